package patient

import (
	"github.com/clinica/clinica/internal/platform/validate"
	"github.com/clinica/clinica/internal/store"
)

// Patient is the wire and in-process shape of a clinic patient. The
// id_paciente integer is the domain's own identifier and is unrelated to
// the opaque key the store assigns.
type Patient struct {
	IDPaciente      *int    `json:"id_paciente,omitempty"`
	Nombre          string  `json:"nombre"`
	Apellido        string  `json:"apellido"`
	FechaNacimiento string  `json:"fecha_nacimiento"`
	Telefono        *string `json:"telefono,omitempty"`
	Email           string  `json:"email"`
	Direccion       string  `json:"direccion"`
}

// Validate checks every field against the patient contract, trimming
// string fields in place. fecha_nacimiento is expected in canonical form
// already; the service normalizes it before validating.
func (p *Patient) Validate() error {
	var err error
	if p.Nombre, err = validate.Name("nombre", p.Nombre, 2, 50); err != nil {
		return err
	}
	if p.Apellido, err = validate.Name("apellido", p.Apellido, 2, 50); err != nil {
		return err
	}
	if p.FechaNacimiento, err = validate.Required("fecha_nacimiento", p.FechaNacimiento, 1, 50); err != nil {
		return err
	}
	if p.Telefono, err = validate.Optional("telefono", p.Telefono, 20); err != nil {
		return err
	}
	if p.Email, err = validate.Required("email", p.Email, 1, 100); err != nil {
		return err
	}
	if p.Direccion, err = validate.Required("direccion", p.Direccion, 1, 200); err != nil {
		return err
	}
	return nil
}

// Document converts the patient to its stored form. Absent optional
// fields become explicit nulls, so a full-payload write overwrites every
// declared field including ones the caller left out.
func (p *Patient) Document() store.Document {
	doc := store.Document{
		"nombre":           p.Nombre,
		"apellido":         p.Apellido,
		"fecha_nacimiento": p.FechaNacimiento,
		"email":            p.Email,
		"direccion":        p.Direccion,
		"id_paciente":      nil,
		"telefono":         nil,
	}
	if p.IDPaciente != nil {
		doc["id_paciente"] = *p.IDPaciente
	}
	if p.Telefono != nil {
		doc["telefono"] = *p.Telefono
	}
	return doc
}

// ValidateFields applies the same field table to a partial-update payload.
// Unknown fields are rejected; touched fields obey the full-record rules.
// String values are trimmed in place so the stripped form is persisted.
func ValidateFields(fields store.Document) error {
	for name, value := range fields {
		var err error
		switch name {
		case "id_paciente":
			err = validate.RefField(fields, name)
		case "nombre", "apellido":
			err = validate.NameField(fields, name, 2, 50)
		case "fecha_nacimiento":
			_, err = validate.StringValue(name, value)
		case "telefono":
			err = validate.OptionalField(fields, name, 20)
		case "email":
			err = validate.RequiredField(fields, name, 100)
		case "direccion":
			err = validate.RequiredField(fields, name, 200)
		default:
			err = &validate.Error{Field: name, Reason: "campo desconocido"}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
