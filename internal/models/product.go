package models

import (
	"time"
)

// Valores permitidos de gender.
const (
	GenderMen    = "Men"
	GenderWomen  = "Women"
	GenderUnisex = "Unisex"
)

// Tipos de producto.
const (
	TypeSunglasses = "Sunglasses"
	TypeEyeglasses = "Eyeglasses"
)

// Estados de producto.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusScheduled = "scheduled"
)

func ValidGender(g string) bool {
	return g == GenderMen || g == GenderWomen || g == GenderUnisex
}

func ValidProductType(t string) bool {
	return t == TypeSunglasses || t == TypeEyeglasses
}

func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive || s == StatusScheduled
}

// Product representa un producto del catálogo de gafas.
type Product struct {
	ID               string     `json:"id" bson:"_id"`
	SKU              string     `json:"sku" bson:"sku"`
	Name             string     `json:"name" bson:"name"`
	Collection       string     `json:"collection" bson:"collection"`
	Price            float64    `json:"price" bson:"price"`
	OriginalPrice    *float64   `json:"original_price,omitempty" bson:"original_price,omitempty"`
	Gender           string     `json:"gender" bson:"gender"`
	Type             string     `json:"type" bson:"type"`
	FrameColor       string     `json:"frame_color" bson:"frame_color"`
	LensColor        string     `json:"lens_color" bson:"lens_color"`
	Materials        string     `json:"materials" bson:"materials"`
	MadeIn           string     `json:"made_in" bson:"made_in"`
	IsLimitedEdition bool       `json:"is_limited_edition" bson:"is_limited_edition"`
	IsFeatured       bool       `json:"is_featured" bson:"is_featured"`
	IsOnSale         bool       `json:"is_on_sale" bson:"is_on_sale"`
	Status           string     `json:"status" bson:"status"`
	MainImage        string     `json:"main_image" bson:"main_image"`
	GalleryImages    []string   `json:"gallery_images" bson:"gallery_images"`
	ShortDescription string     `json:"short_description" bson:"short_description"`
	FullDescription  string     `json:"full_description,omitempty" bson:"full_description,omitempty"`
	Tags             []string   `json:"tags" bson:"tags"`
	CreatedAt        time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" bson:"updated_at"`
	ScheduledAt      *time.Time `json:"scheduled_at,omitempty" bson:"scheduled_at,omitempty"`
}

// ProductCreate es el cuerpo de creación; los campos de sistema
// (id, is_on_sale, timestamps) los asigna el repositorio.
type ProductCreate struct {
	SKU              string     `json:"sku" binding:"required"`
	Name             string     `json:"name" binding:"required"`
	Collection       string     `json:"collection" binding:"required"`
	Price            float64    `json:"price" binding:"required"`
	OriginalPrice    *float64   `json:"original_price,omitempty"`
	Gender           string     `json:"gender" binding:"required"`
	Type             string     `json:"type" binding:"required"`
	FrameColor       string     `json:"frame_color" binding:"required"`
	LensColor        string     `json:"lens_color" binding:"required"`
	Materials        string     `json:"materials" binding:"required"`
	MadeIn           string     `json:"made_in"`
	IsLimitedEdition bool       `json:"is_limited_edition"`
	IsFeatured       bool       `json:"is_featured"`
	Status           string     `json:"status"`
	MainImage        string     `json:"main_image" binding:"required"`
	GalleryImages    []string   `json:"gallery_images"`
	ShortDescription string     `json:"short_description" binding:"required"`
	FullDescription  string     `json:"full_description"`
	Tags             []string   `json:"tags"`
	ScheduledAt      *time.Time `json:"scheduled_at,omitempty"`
}

// Validate comprueba los valores enumerados del cuerpo de creación.
func (in ProductCreate) Validate() error {
	if !ValidGender(in.Gender) {
		return errInvalidEnum("gender", in.Gender)
	}
	if !ValidProductType(in.Type) {
		return errInvalidEnum("type", in.Type)
	}
	if in.Status != "" && !ValidStatus(in.Status) {
		return errInvalidEnum("status", in.Status)
	}
	return nil
}

// NewProduct materializa el producto a insertar. is_on_sale se deriva
// de la presencia de original_price, nunca lo fija el cliente.
func (in ProductCreate) NewProduct(id string, now time.Time) Product {
	madeIn := in.MadeIn
	if madeIn == "" {
		madeIn = "Italy"
	}
	status := in.Status
	if status == "" {
		status = StatusActive
	}
	gallery := in.GalleryImages
	if gallery == nil {
		gallery = []string{}
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	return Product{
		ID:               id,
		SKU:              in.SKU,
		Name:             in.Name,
		Collection:       in.Collection,
		Price:            in.Price,
		OriginalPrice:    in.OriginalPrice,
		Gender:           in.Gender,
		Type:             in.Type,
		FrameColor:       in.FrameColor,
		LensColor:        in.LensColor,
		Materials:        in.Materials,
		MadeIn:           madeIn,
		IsLimitedEdition: in.IsLimitedEdition,
		IsFeatured:       in.IsFeatured,
		IsOnSale:         in.OriginalPrice != nil,
		Status:           status,
		MainImage:        in.MainImage,
		GalleryImages:    gallery,
		ShortDescription: in.ShortDescription,
		FullDescription:  in.FullDescription,
		Tags:             tags,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// ProductUpdate representa los campos actualizables de un producto.
// Un puntero nil significa "no tocar".
type ProductUpdate struct {
	Name             *string    `json:"name,omitempty"`
	Collection       *string    `json:"collection,omitempty"`
	Price            *float64   `json:"price,omitempty"`
	OriginalPrice    *float64   `json:"original_price,omitempty"`
	SKU              *string    `json:"sku,omitempty"`
	Gender           *string    `json:"gender,omitempty"`
	Type             *string    `json:"type,omitempty"`
	FrameColor       *string    `json:"frame_color,omitempty"`
	LensColor        *string    `json:"lens_color,omitempty"`
	Materials        *string    `json:"materials,omitempty"`
	MadeIn           *string    `json:"made_in,omitempty"`
	IsLimitedEdition *bool      `json:"is_limited_edition,omitempty"`
	IsFeatured       *bool      `json:"is_featured,omitempty"`
	Status           *string    `json:"status,omitempty"`
	MainImage        *string    `json:"main_image,omitempty"`
	GalleryImages    []string   `json:"gallery_images,omitempty"`
	ShortDescription *string    `json:"short_description,omitempty"`
	FullDescription  *string    `json:"full_description,omitempty"`
	Tags             []string   `json:"tags,omitempty"`
	ScheduledAt      *time.Time `json:"scheduled_at,omitempty"`
}

// Validate comprueba los enumerados presentes en el update.
func (u ProductUpdate) Validate() error {
	if u.Gender != nil && !ValidGender(*u.Gender) {
		return errInvalidEnum("gender", *u.Gender)
	}
	if u.Type != nil && !ValidProductType(*u.Type) {
		return errInvalidEnum("type", *u.Type)
	}
	if u.Status != nil && !ValidStatus(*u.Status) {
		return errInvalidEnum("status", *u.Status)
	}
	return nil
}

// SetDocument construye el documento $set solo con los campos presentes.
// Si original_price viene en el update se recalcula is_on_sale.
func (u ProductUpdate) SetDocument() map[string]interface{} {
	set := map[string]interface{}{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Collection != nil {
		set["collection"] = *u.Collection
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.OriginalPrice != nil {
		set["original_price"] = *u.OriginalPrice
		set["is_on_sale"] = true
	}
	if u.SKU != nil {
		set["sku"] = *u.SKU
	}
	if u.Gender != nil {
		set["gender"] = *u.Gender
	}
	if u.Type != nil {
		set["type"] = *u.Type
	}
	if u.FrameColor != nil {
		set["frame_color"] = *u.FrameColor
	}
	if u.LensColor != nil {
		set["lens_color"] = *u.LensColor
	}
	if u.Materials != nil {
		set["materials"] = *u.Materials
	}
	if u.MadeIn != nil {
		set["made_in"] = *u.MadeIn
	}
	if u.IsLimitedEdition != nil {
		set["is_limited_edition"] = *u.IsLimitedEdition
	}
	if u.IsFeatured != nil {
		set["is_featured"] = *u.IsFeatured
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	if u.MainImage != nil {
		set["main_image"] = *u.MainImage
	}
	if u.GalleryImages != nil {
		set["gallery_images"] = u.GalleryImages
	}
	if u.ShortDescription != nil {
		set["short_description"] = *u.ShortDescription
	}
	if u.FullDescription != nil {
		set["full_description"] = *u.FullDescription
	}
	if u.Tags != nil {
		set["tags"] = u.Tags
	}
	if u.ScheduledAt != nil {
		set["scheduled_at"] = *u.ScheduledAt
	}
	return set
}
