package specialty

import (
	"github.com/clinica/clinica/internal/platform/validate"
	"github.com/clinica/clinica/internal/store"
)

// Specialty is a medical specialty offered by the clinic. Doctors point
// at it through their id_especialidad field.
type Specialty struct {
	IDEspecialidad *int    `json:"id_especialidad,omitempty"`
	Nombre         string  `json:"nombre"`
	Descripcion    *string `json:"descripcion,omitempty"`
}

func (s *Specialty) Validate() error {
	var err error
	if s.Nombre, err = validate.Required("nombre", s.Nombre, 3, 100); err != nil {
		return err
	}
	if s.Descripcion, err = validate.Optional("descripcion", s.Descripcion, 500); err != nil {
		return err
	}
	return nil
}

// Document converts the specialty to its stored form. Absent optional
// fields become explicit nulls, so a full-payload write overwrites every
// declared field including ones the caller left out.
func (s *Specialty) Document() store.Document {
	doc := store.Document{
		"nombre":          s.Nombre,
		"id_especialidad": nil,
		"descripcion":     nil,
	}
	if s.IDEspecialidad != nil {
		doc["id_especialidad"] = *s.IDEspecialidad
	}
	if s.Descripcion != nil {
		doc["descripcion"] = *s.Descripcion
	}
	return doc
}

// ValidateFields applies the same field table to a partial-update payload.
func ValidateFields(fields store.Document) error {
	for name := range fields {
		var err error
		switch name {
		case "id_especialidad":
			err = validate.RefField(fields, name)
		case "nombre":
			if fields[name] == nil {
				err = &validate.Error{Field: name, Reason: "es requerido"}
				break
			}
			var s, trimmed string
			if s, err = validate.StringValue(name, fields[name]); err == nil {
				if trimmed, err = validate.Required(name, s, 3, 100); err == nil {
					fields[name] = trimmed
				}
			}
		case "descripcion":
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
