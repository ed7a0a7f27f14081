package gemini

// nameExtractionInstruction asks the model for the bare proper name and
// nothing else. The %s parameters are the field kind ("name"/"surname") in
// Italian and the sentinel to use when no name is present.
const nameExtractionInstruction = `Estrai SOLO il %s proprio della persona dal messaggio seguente.
Rispondi esclusivamente con il %s, senza punteggiatura, senza spiegazioni e senza altre parole.
Se il messaggio non contiene alcun %s, rispondi esattamente: %s

Messaggio: %s`

// kindLabels maps the extractor's field kind to the Italian word used in the
// extraction prompt.
var kindLabels = map[string]string{
	"name":    "nome",
	"surname": "cognome",
}
