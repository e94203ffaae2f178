package service

const (
	// instructionPrompt is sent unchanged with every image.
	instructionPrompt = "Extrae la(s) ecuación(es) matemática(s) de la imagen como código LaTeX.\n" +
		"Pautas estrictas:\n" +
		"- Devuelve solo el código LaTeX, sin texto adicional.\n" +
		"- No simplifiques ni reescribas.\n" +
		"- No incluyas documentclass, packages ni begindocument.\n" +
		"- No uses signos de dólar ($) alrededor del código.\n" +
		"- No agregues comentarios ni explicaciones.\n"

	imageDataURIPrefix = "data:image/jpeg;base64,"
)
