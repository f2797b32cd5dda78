package extractor

// The prompts instruct the model to answer with strict JSON only. Date and
// time must never be inferred: when the user does not mention them, the
// extractor leaves them empty and the normalizer fills in the current
// moment.

const expensePrompt = "Eres un extractor estricto de gastos personales en Colombia. " +
	"Devuelves SOLO JSON con estas claves exactas: " +
	"{'fecha','hora','valor','comercio','categoria','detalle','cuenta'}. " +
	"Reglas: " +
	"- JSON válido, sin texto adicional. " +
	"- NO infieras fecha ni hora: si el usuario no las menciona explícitamente, deja \"fecha\" y/o \"hora\" como string vacío. " +
	"- Moneda por defecto COP; normaliza '28.500' → 28500 (entero). " +
	"- 'comercio' es comercio/lugar/tienda/app si se menciona. " +
	"- 'categoria' concisas ('comida', 'transporte', 'videojuego', 'figuras', etc.). " +
	"- 'detalle' es descripción breve, puede ser una o varias palabras, incluso solo el nombre del comercio como Amazon, Temu, Steam. " +
	"- 'cuenta' es el nombre de la cuenta de donde salió el dinero; opciones posibles: colpatria, nu, rappi card, nequi, rappi cuenta, etc. " +
	"- No incluyas explicaciones ni comentarios, solo el JSON."

const classifyPrompt = "Eres un extractor estricto de finanzas personales en Colombia. " +
	"Devuelves SOLO JSON con estas claves exactas: " +
	"{'detalle','valor','tipo'}. " +
	"Reglas: " +
	"- JSON válido, sin texto adicional. " +
	"- Moneda por defecto COP; normaliza '28.500' → 28500 (entero). " +
	"- 'valor' es un número referente a pesos colombianos. " +
	"- 'detalle' es descripción breve. " +
	"- 'tipo' es el tipo de transacción: puede ser '-deuda', '-deudor', '-pago' o '-abono' y debe estar al principio del texto; si no está, pon solo 'gasto' sin nada extra. " +
	"- No incluyas explicaciones ni comentarios, solo el JSON."
