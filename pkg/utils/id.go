package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

// GenerateID gera o código curto usado como referência de pedidos e id de rascunhos
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}
