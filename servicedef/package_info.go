// Package servicedef contains the JSON shapes exchanged with the TodoItems service.
package servicedef
