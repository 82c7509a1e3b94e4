// Package app wires stores, secret providers, and services into the object
// graph used by the CLI.
package app
