package model

import "time"

// Nutrition holds the estimated macro profile for a menu item.
// Values are whole units: grams for macros, milligrams for sodium.
type Nutrition struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Sodium   int `json:"sodium"`
	Sugar    int `json:"sugar"`
}

// MenuItem represents a single dish on a restaurant's menu.
type MenuItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	MealType    string    `json:"mealType"`
	Nutrition   Nutrition `json:"nutritionInfo"`
	Allergens   []string  `json:"allergens"`
	ServingSize string    `json:"servingSize"`
	Available   bool      `json:"available"`
	Category    string    `json:"category"`
}

// DayHours holds opening and closing times for a single day.
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Hours holds the weekly operating-hours template.
type Hours struct {
	Mon DayHours `json:"mon"`
	Tue DayHours `json:"tue"`
	Wed DayHours `json:"wed"`
	Thu DayHours `json:"thu"`
	Fri DayHours `json:"fri"`
	Sat DayHours `json:"sat"`
	Sun DayHours `json:"sun"`
}

// Restaurant is the aggregate persisted to the destination store.
// It is constructed once per import run and never mutated afterwards.
type Restaurant struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	Hours       Hours      `json:"hours"`
	MealTypes   []string   `json:"mealTypes"`
	Menu        []MenuItem `json:"menu"`
	LastUpdated time.Time  `json:"lastUpdated"`
}
