// Package model provides the data structures shared by the pipeline package and its observers.
// It defines the description of an operation as seen during a run,
// and the contract every pipeline option has to implement.
package model
