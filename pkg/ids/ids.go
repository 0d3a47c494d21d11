// Package ids genera identificadores opacos de 12 caracteres alfanuméricos.
package ids

import gonanoid "github.com/matoous/go-nanoid/v2"

// Alphabet caracteres permitidos en los ids.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Length longitud fija de cada id.
const Length = 12

// New devuelve un id aleatorio nuevo.
func New() (string, error) {
	return gonanoid.Generate(Alphabet, Length)
}
