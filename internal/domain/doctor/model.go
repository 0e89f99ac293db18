package doctor

import (
	"github.com/clinica/clinica/internal/platform/validate"
	"github.com/clinica/clinica/internal/store"
)

// Doctor belongs to a specialty through id_especialidad. The reference is
// checked for shape only; whether the specialty exists is not enforced.
type Doctor struct {
	IDDoctor       *int    `json:"id_doctor,omitempty"`
	Nombre         string  `json:"nombre"`
	Apellido       string  `json:"apellido"`
	Telefono       *string `json:"telefono,omitempty"`
	Email          *string `json:"email,omitempty"`
	IDEspecialidad int     `json:"id_especialidad"`
}

func (d *Doctor) Validate() error {
	var err error
	if d.Nombre, err = validate.Name("nombre", d.Nombre, 2, 50); err != nil {
		return err
	}
	if d.Apellido, err = validate.Name("apellido", d.Apellido, 2, 50); err != nil {
		return err
	}
	if d.Telefono, err = validate.Optional("telefono", d.Telefono, 20); err != nil {
		return err
	}
	if d.Email, err = validate.Optional("email", d.Email, 100); err != nil {
		return err
	}
	return validate.PositiveRef("id_especialidad", d.IDEspecialidad)
}

// Document converts the doctor to its stored form. Absent optional
// fields become explicit nulls, so a full-payload write overwrites every
// declared field including ones the caller left out.
func (d *Doctor) Document() store.Document {
	doc := store.Document{
		"nombre":          d.Nombre,
		"apellido":        d.Apellido,
		"id_especialidad": d.IDEspecialidad,
		"id_doctor":       nil,
		"telefono":        nil,
		"email":           nil,
	}
	if d.IDDoctor != nil {
		doc["id_doctor"] = *d.IDDoctor
	}
	if d.Telefono != nil {
		doc["telefono"] = *d.Telefono
	}
	if d.Email != nil {
		doc["email"] = *d.Email
	}
	return doc
}

// ValidateFields applies the same field table to a partial-update payload.
func ValidateFields(fields store.Document) error {
	for name := range fields {
		var err error
		switch name {
		case "id_doctor", "id_especialidad":
			err = validate.RefField(fields, name)
		case "nombre", "apellido":
			err = validate.NameField(fields, name, 2, 50)
		case "telefono":
			err = validate.OptionalField(fields, name, 20)
		case "email":
			err = validate.OptionalField(fields, name, 100)
		default:
			err = &validate.Error{Field: name, Reason: "campo desconocido"}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
