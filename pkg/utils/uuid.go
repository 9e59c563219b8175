package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador aleatório com o tamanho informado,
// restrito a caracteres seguros para URLs
func GenerateID(size int) (string, error) {
	return gonanoid.Generate(idAlphabet, size)
}
