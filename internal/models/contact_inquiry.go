package models

import "time"

// ContactInquiry is a message sent through the public contact form. The
// property reference is weak: it may point at a listing that has since been
// deleted, and no integrity check is performed.
type ContactInquiry struct {
	ID            int       `bson:"id" json:"id"`
	Nombre        string    `bson:"nombre" json:"nombre"`
	Email         string    `bson:"email" json:"email"`
	Telefono      string    `bson:"telefono" json:"telefono"`
	Mensaje       string    `bson:"mensaje" json:"mensaje"`
	PropiedadID   *int      `bson:"propiedad_id,omitempty" json:"propiedad_id,omitempty"`
	FechaConsulta time.Time `bson:"fecha_consulta" json:"fecha_consulta"`
	Leida         bool      `bson:"leida" json:"leida"`
}
