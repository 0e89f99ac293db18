package history

import (
	"github.com/clinica/clinica/internal/platform/validate"
	"github.com/clinica/clinica/internal/store"
)

// History is one medical-history entry tying a patient to a doctor on a
// given date. Both references are shape-checked only.
type History struct {
	IDHistorial   *int    `json:"id_historial,omitempty"`
	Fecha         string  `json:"fecha"`
	Diagnostico   *string `json:"diagnostico,omitempty"`
	Tratamiento   *string `json:"tratamiento,omitempty"`
	Observaciones *string `json:"observaciones,omitempty"`
	IDPaciente    int     `json:"id_paciente"`
	IDDoctor      int     `json:"id_doctor"`
}

// Validate expects fecha in canonical form already; the service
// normalizes it before validating.
func (h *History) Validate() error {
	var err error
	if h.Fecha, err = validate.Required("fecha", h.Fecha, 1, 50); err != nil {
		return err
	}
	if h.Diagnostico, err = validate.Optional("diagnostico", h.Diagnostico, 1000); err != nil {
		return err
	}
	if h.Tratamiento, err = validate.Optional("tratamiento", h.Tratamiento, 1000); err != nil {
		return err
	}
	if h.Observaciones, err = validate.Optional("observaciones", h.Observaciones, 2000); err != nil {
		return err
	}
	if err = validate.PositiveRef("id_paciente", h.IDPaciente); err != nil {
		return err
	}
	return validate.PositiveRef("id_doctor", h.IDDoctor)
}

// Document converts the entry to its stored form. Absent optional
// fields become explicit nulls, so a full-payload write overwrites every
// declared field including ones the caller left out.
func (h *History) Document() store.Document {
	doc := store.Document{
		"fecha":         h.Fecha,
		"id_paciente":   h.IDPaciente,
		"id_doctor":     h.IDDoctor,
		"id_historial":  nil,
		"diagnostico":   nil,
		"tratamiento":   nil,
		"observaciones": nil,
	}
	if h.IDHistorial != nil {
		doc["id_historial"] = *h.IDHistorial
	}
	if h.Diagnostico != nil {
		doc["diagnostico"] = *h.Diagnostico
	}
	if h.Tratamiento != nil {
		doc["tratamiento"] = *h.Tratamiento
	}
	if h.Observaciones != nil {
		doc["observaciones"] = *h.Observaciones
	}
	return doc
}

// ValidateFields applies the same field table to a partial-update payload.
func ValidateFields(fields store.Document) error {
	for name, value := range fields {
		var err error
		switch name {
		case "id_historial", "id_paciente", "id_doctor":
			err = validate.RefField(fields, name)
		case "fecha":
			_, err = validate.StringValue(name, value)
		case "diagnostico", "tratamiento":
			err = validate.OptionalField(fields, name, 1000)
		case "observaciones":
			err = validate.OptionalField(fields, name, 2000)
		default:
			err = &validate.Error{Field: name, Reason: "campo desconocido"}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
