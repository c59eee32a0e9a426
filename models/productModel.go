package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Dimensions struct {
	Length string `json:"length,omitempty" bson:"length,omitempty"`
	Width  string `json:"width,omitempty" bson:"width,omitempty"`
	Height string `json:"height,omitempty" bson:"height,omitempty"`
}

type Specifications struct {
	Processor       string   `json:"processor,omitempty" bson:"processor,omitempty"`
	RAM             string   `json:"ram,omitempty" bson:"ram,omitempty"`
	Storage         string   `json:"storage,omitempty" bson:"storage,omitempty"`
	DisplaySize     string   `json:"displaySize,omitempty" bson:"displaySize,omitempty"`
	Resolution      string   `json:"resolution,omitempty" bson:"resolution,omitempty"`
	BatteryLife     string   `json:"batteryLife,omitempty" bson:"batteryLife,omitempty"`
	OperatingSystem string   `json:"operatingSystem,omitempty" bson:"operatingSystem,omitempty"`
	Connectivity    []string `json:"connectivity,omitempty" bson:"connectivity,omitempty"`
	Ports           []string `json:"ports,omitempty" bson:"ports,omitempty"`
	Warranty        string   `json:"warranty,omitempty" bson:"warranty,omitempty"`
}

type PowerRequirements struct {
	Voltage     string `json:"voltage,omitempty" bson:"voltage,omitempty"`
	Wattage     string `json:"wattage,omitempty" bson:"wattage,omitempty"`
	BatteryType string `json:"batteryType,omitempty" bson:"batteryType,omitempty"`
}

// Product is a single document in the MobileData collection. Records are
// insert-only: nothing in the API mutates or deletes one once written.
type Product struct {
	ID                primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name              string             `json:"name" bson:"name"`
	Description       string             `json:"description,omitempty" bson:"description,omitempty"`
	Price             float64            `json:"price" bson:"price"`
	Category          string             `json:"category,omitempty" bson:"category,omitempty"`
	Brand             string             `json:"brand,omitempty" bson:"brand,omitempty"`
	Model             string             `json:"model,omitempty" bson:"model,omitempty"`
	SKU               string             `json:"sku" bson:"sku"`
	Stock             int                `json:"stock" bson:"stock"`
	Weight            string             `json:"weight,omitempty" bson:"weight,omitempty"`
	Dimensions        *Dimensions        `json:"dimensions,omitempty" bson:"dimensions,omitempty"`
	Specifications    *Specifications    `json:"specifications,omitempty" bson:"specifications,omitempty"`
	PowerRequirements *PowerRequirements `json:"powerRequirements,omitempty" bson:"powerRequirements,omitempty"`
	Certifications    []string           `json:"certifications,omitempty" bson:"certifications,omitempty"`
	Colors            []string           `json:"colors,omitempty" bson:"colors,omitempty"`
	Features          []string           `json:"features,omitempty" bson:"features,omitempty"`
	Tags              string             `json:"tags,omitempty" bson:"tags,omitempty"`
	Status            string             `json:"status" bson:"status"`
	Featured          bool               `json:"featured" bson:"featured"`
	Images            []string           `json:"images" bson:"images"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProductInput is the create-product request body. Images carries URLs that
// have already been uploaded to the image host; timestamps and the identifier
// are assigned at insert time, never taken from the client.
type ProductInput struct {
	Name              string             `json:"name" binding:"required"`
	Description       string             `json:"description"`
	Price             float64            `json:"price" binding:"required,gt=0"`
	Category          string             `json:"category"`
	Brand             string             `json:"brand"`
	Model             string             `json:"model"`
	SKU               string             `json:"sku" binding:"required"`
	Stock             int                `json:"stock" binding:"gte=0"`
	Weight            string             `json:"weight"`
	Dimensions        *Dimensions        `json:"dimensions"`
	Specifications    *Specifications    `json:"specifications"`
	PowerRequirements *PowerRequirements `json:"powerRequirements"`
	Certifications    []string           `json:"certifications"`
	Colors            []string           `json:"colors"`
	Features          []string           `json:"features"`
	Tags              string             `json:"tags"`
	Status            string             `json:"status"`
	Featured          bool               `json:"featured"`
	Images            []string           `json:"images"`
}

// ElectronicCategories backs the category select control and the fallback
// illustration lookup. Category stays free text on the document itself.
var ElectronicCategories = []string{
	"Smartphones",
	"Laptops & Computers",
	"Tablets",
	"Smart Watches",
	"Headphones & Audio",
	"Gaming Consoles",
	"Cameras & Photography",
	"Smart Home Devices",
	"Televisions & Displays",
	"Networking Equipment",
	"Power Banks & Chargers",
	"Drones & RC",
	"VR & AR Devices",
	"Other Electronics",
}
