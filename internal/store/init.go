package store

import (
	"context"
	"fmt"
)

var seedSpecialties = []Document{
	{"nombre": "Cardiología", "descripcion": "Especialidad médica que se encarga del diagnóstico y tratamiento de las enfermedades del corazón"},
	{"nombre": "Dermatología", "descripcion": "Especialidad médica que se encarga del diagnóstico y tratamiento de las enfermedades de la piel"},
	{"nombre": "Pediatría", "descripcion": "Especialidad médica que se encarga del cuidado de la salud de los niños"},
	{"nombre": "Ginecología", "descripcion": "Especialidad médica que se encarga de la salud del sistema reproductor femenino"},
	{"nombre": "Ortopedia", "descripcion": "Especialidad médica que se encarga del diagnóstico y tratamiento de lesiones y enfermedades del sistema musculoesquelético"},
}

var seedDoctors = []Document{
	{"nombre": "María", "apellido": "García", "telefono": "3001234567", "email": "maria.garcia@clinica.com", "id_especialidad": 1},
	{"nombre": "Carlos", "apellido": "Rodríguez", "telefono": "3002345678", "email": "carlos.rodriguez@clinica.com", "id_especialidad": 2},
	{"nombre": "Ana", "apellido": "López", "telefono": "3003456789", "email": "ana.lopez@clinica.com", "id_especialidad": 3},
	{"nombre": "Luis", "apellido": "Martínez", "telefono": "3004567890", "email": "luis.martinez@clinica.com", "id_especialidad": 4},
	{"nombre": "Patricia", "apellido": "Hernández", "telefono": "3005678901", "email": "patricia.hernandez@clinica.com", "id_especialidad": 5},
}

var seedPatients = []Document{
	{"nombre": "Juan", "apellido": "Pérez", "fecha_nacimiento": "1990-05-15T00:00:00Z", "telefono": "3001111111", "email": "juan.perez@email.com", "direccion": "Calle 123 #45-67"},
	{"nombre": "María", "apellido": "González", "fecha_nacimiento": "1985-08-22T00:00:00Z", "telefono": "3002222222", "email": "maria.gonzalez@email.com", "direccion": "Carrera 78 #90-12"},
	{"nombre": "Pedro", "apellido": "Sánchez", "fecha_nacimiento": "1995-03-10T00:00:00Z", "telefono": "3003333333", "email": "pedro.sanchez@email.com", "direccion": "Avenida 5 #23-45"},
	{"nombre": "Ana", "apellido": "Ramírez", "fecha_nacimiento": "1988-12-05T00:00:00Z", "telefono": "3004444444", "email": "ana.ramirez@email.com", "direccion": "Calle 67 #89-01"},
	{"nombre": "Luis", "apellido": "Torres", "fecha_nacimiento": "1992-07-18T00:00:00Z", "telefono": "3005555555", "email": "luis.torres@email.com", "direccion": "Carrera 34 #56-78"},
}

// Secondary indexes on the document fields used for lookup.
var indexes = []struct {
	name       string
	collection string
	field      string
}{
	{"idx_cita_fecha_hora", ColAppointment, "fecha_hora"},
	{"idx_cita_id_paciente", ColAppointment, "id_paciente"},
	{"idx_cita_id_doctor", ColAppointment, "id_doctor"},
	{"idx_historial_id_paciente", ColHistory, "id_paciente"},
	{"idx_historial_fecha", ColHistory, "fecha"},
	{"idx_doctor_id_especialidad", ColDoctor, "id_especialidad"},
}

// Init prepares the store and is safe to run on every startup: collections
// are created if missing, baseline reference data is seeded only while the
// specialty collection is empty, and lookup indexes are created or
// verified. Index failures are warnings; everything else aborts startup.
func (s *PG) Init(ctx context.Context) error {
	for _, collection := range Collections {
		_, err := s.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS `+table(collection)+` (
			id uuid PRIMARY KEY,
			doc jsonb NOT NULL DEFAULT '{}'::jsonb,
			created_at timestamptz NOT NULL DEFAULT now(),
			updated_at timestamptz
		)`)
		if err != nil {
			s.log.Error().Err(err).Str("collection", collection).Msg("create collection")
			return fmt.Errorf("create collection %s: %w", collection, err)
		}
	}

	var specialties int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+table(ColSpecialty)).Scan(&specialties); err != nil {
		s.log.Error().Err(err).Msg("count specialties")
		return fmt.Errorf("count specialties: %w", err)
	}

	if specialties == 0 {
		s.log.Info().Msg("seeding baseline data")
		for collection, docs := range map[string][]Document{
			ColSpecialty: seedSpecialties,
			ColDoctor:    seedDoctors,
			ColPatient:   seedPatients,
		} {
			for _, doc := range docs {
				if _, err := s.Insert(ctx, collection, doc); err != nil {
					return fmt.Errorf("seed %s: %w", collection, err)
				}
			}
		}
	}

	for _, idx := range indexes {
		_, err := s.pool.Exec(ctx, fmt.Sprintf(
			`CREATE INDEX IF NOT EXISTS %s ON %s ((doc->>'%s'))`,
			idx.name, table(idx.collection), idx.field))
		if err != nil {
			s.log.Warn().Err(err).Str("index", idx.name).Msg("create index")
		}
	}

	s.log.Info().Msg("store initialized")
	return nil
}
