package lexicon

import (
	"encoding/json"
	"fmt"
)

// BuildPrompt asks for a single JSON object describing word, with Spanish
// glosses and one example sentence in the given specialised domain.
func BuildPrompt(word, domain string) string {
	quotedWord, err := json.Marshal(word)
	if err != nil {
		quotedWord = []byte(fmt.Sprintf("%q", word))
	}

	return fmt.Sprintf(`Estoy aprendiendo inglés. Proporciona información completa y detallada sobre la palabra en inglés %[1]s.
Responde únicamente con un objeto JSON con exactamente estas siete claves y no incluyas texto adicional, explicaciones ni bloques de código.

{
  "word": %[1]s,
  "meanings": ["Lista con los significados en español. Solo palabra clave o frase corta, sin oraciones completas"],
  "pronunciation": "La pronunciación fonética simplificada en español, no la oficial. Por ejemplo Hello = /jelou/ o Help = /jelp/",
  "grammar": "El infinitivo, los tiempos verbales y las conjugaciones más comunes (si aplica; si no, cadena vacía)",
  "etymology": "El origen y la historia de la palabra",
  "example_general": "Una oración de ejemplo en inglés en contexto general",
  "example_domain": "Una oración de ejemplo en inglés en contexto %[2]s"
}`, quotedWord, domain)
}
