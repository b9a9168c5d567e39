package models

import "time"

// Collection agrupa productos bajo un nombre comercial (Signature, Heritage...).
type Collection struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Slug        string    `json:"slug" bson:"slug"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	IsActive    bool      `json:"is_active" bson:"is_active"`
	SortOrder   int       `json:"sort_order" bson:"sort_order"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// CollectionCreate es el cuerpo de creación. Si slug viene vacío
// se deriva del nombre.
type CollectionCreate struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
	IsActive    *bool  `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

// NewCollection materializa la colección a insertar.
func (in CollectionCreate) NewCollection(id, slug string, now time.Time) Collection {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return Collection{
		ID:          id,
		Name:        in.Name,
		Slug:        slug,
		Description: in.Description,
		Image:       in.Image,
		IsActive:    active,
		SortOrder:   in.SortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CollectionUpdate representa los campos actualizables de una colección.
type CollectionUpdate struct {
	Name        *string `json:"name,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
}

// SetDocument construye el documento $set solo con los campos presentes.
func (u CollectionUpdate) SetDocument() map[string]interface{} {
	set := map[string]interface{}{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Slug != nil {
		set["slug"] = *u.Slug
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Image != nil {
		set["image"] = *u.Image
	}
	if u.IsActive != nil {
		set["is_active"] = *u.IsActive
	}
	if u.SortOrder != nil {
		set["sort_order"] = *u.SortOrder
	}
	return set
}
