package appointment

import (
	"github.com/clinica/clinica/internal/platform/validate"
	"github.com/clinica/clinica/internal/store"
)

// Appointment schedules a patient with a doctor at a point in time.
// Overlapping appointments are allowed; both references are shape-checked
// only.
type Appointment struct {
	IDCita     *int    `json:"id_cita,omitempty"`
	FechaHora  string  `json:"fecha_hora"`
	Motivo     *string `json:"motivo,omitempty"`
	IDPaciente int     `json:"id_paciente"`
	IDDoctor   int     `json:"id_doctor"`
}

// Validate expects fecha_hora in canonical form already; the service
// normalizes it before validating.
func (a *Appointment) Validate() error {
	var err error
	if a.FechaHora, err = validate.Required("fecha_hora", a.FechaHora, 1, 50); err != nil {
		return err
	}
	if a.Motivo, err = validate.Optional("motivo", a.Motivo, 500); err != nil {
		return err
	}
	if err = validate.PositiveRef("id_paciente", a.IDPaciente); err != nil {
		return err
	}
	return validate.PositiveRef("id_doctor", a.IDDoctor)
}

// Document converts the appointment to its stored form. Absent optional
// fields become explicit nulls, so a full-payload write overwrites every
// declared field including ones the caller left out.
func (a *Appointment) Document() store.Document {
	doc := store.Document{
		"fecha_hora":  a.FechaHora,
		"id_paciente": a.IDPaciente,
		"id_doctor":   a.IDDoctor,
		"id_cita":     nil,
		"motivo":      nil,
	}
	if a.IDCita != nil {
		doc["id_cita"] = *a.IDCita
	}
	if a.Motivo != nil {
		doc["motivo"] = *a.Motivo
	}
	return doc
}

// ValidateFields applies the same field table to a partial-update payload.
func ValidateFields(fields store.Document) error {
	for name, value := range fields {
		var err error
		switch name {
		case "id_cita", "id_paciente", "id_doctor":
			err = validate.RefField(fields, name)
		case "fecha_hora":
			_, err = validate.StringValue(name, value)
		case "motivo":
			err = validate.OptionalField(fields, name, 500)
		default:
			err = &validate.Error{Field: name, Reason: "campo desconocido"}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
