package models

import (
	"errors"
	"image/color"

	"github.com/golangdaddy/drifter/pkg/models/car"
)

// ErrCarNotFound is returned when no car matches a lookup
var ErrCarNotFound = errors.New("car not found")

// CarInventory manages the collection of selectable cars.
// The first car drives on the base tuning unchanged.
var CarInventory = &carInventory{
	cars: []*car.Car{
		car.NewCar("Mazda", "MX-5", 1990, color.RGBA{220, 40, 40, 255}),
		withOverrides(car.NewCar("Nissan", "Silvia S15", 1999, color.RGBA{240, 240, 245, 255}), 340, 0, 560, 2.5),
		withOverrides(car.NewCar("Toyota", "AE86", 1985, color.RGBA{250, 250, 250, 255}), 280, 0, 470, 2.8),
		withOverrides(car.NewCar("BMW", "E30 325i", 1988, color.RGBA{40, 70, 160, 255}), 300, 500, 500, 2.3),
		withOverrides(car.NewCar("Ford", "Mustang", 2019, color.RGBA{250, 180, 30, 255}), 380, 420, 600, 2.0),
	},
}

type carInventory struct {
	cars []*car.Car
}

func withOverrides(c *car.Car, accel, brake, maxSpeed, steer float64) *car.Car {
	c.Accel = accel
	c.Brake = brake
	c.MaxSpeed = maxSpeed
	c.SteerRate = steer
	return c
}

// GetAllCars returns all available cars
func (ci *carInventory) GetAllCars() []*car.Car {
	return ci.cars
}

// Default returns the stock car
func (ci *carInventory) Default() *car.Car {
	return ci.cars[0]
}

// Find returns the car with the given make and model
func (ci *carInventory) Find(make, model string) (*car.Car, error) {
	for _, c := range ci.cars {
		if c.Make == make && c.Model == model {
			return c, nil
		}
	}
	return nil, ErrCarNotFound
}
