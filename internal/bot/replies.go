package bot

import (
	"fmt"
	"strings"

	"github.com/jfmartinez/expensebot/internal/extractor"
	"github.com/jfmartinez/expensebot/internal/record"
)

const (
	replyUnknown          = "😅 No pude entender tu petición, lee de nuevo las instrucciones"
	replyProcessingFailed = "Lo siento, ocurrió un error procesando el mensaje. Inténtalo de nuevo."
	replyPersistFailed    = "Lo siento, no pude guardar el registro. Inténtalo de nuevo."
	replyLedgerFailed     = "Lo siento, no pude consultar Notion. Inténtalo de nuevo."

	replyDebtMissingAmount = "💰 Me falta el valor de la deuda/deudor. Enviame el monto (ej: 25000 o 28.500)"
	replyDebtMissingDetail = "📝 Necesito detalle de la deuda/deudor. Decime algo como: 'luis amazon', etc."
)

const startReply = "👋 Soy tu bot de gastos y finanzas.\n" +
	"-Para agregar gasto obligatorio: 💰 valor, 📝 descripción (categoría/subcategoría/detalle) y 🏦 cuenta.\n" +
	"Ejemplos: 'Uber 7.820 a la oficina, colpatria', 'Nendoroid 200000 en Amazon japon, nu'\n-----------------\n" +
	"Guardaré todo en tu Google Sheets y en Notion.\n" +
	"-Para agregar un deudor: incluye la palabra DEUDOR. Ejemplo: 'Deudor luis netflix julio 15000'.\n-----------------\n" +
	"-Para agregar un abono de deudor: usa /deudores para saber los que hay y luego pasa la misma descripción con la palabra ABONO.\n" +
	"Ejemplo: 'abono luis netflix julio 15000'.\n-----------------\n" +
	"-Para agregar una deuda: incluye la palabra DEUDA. Ejemplo: 'Deuda novaventa 18.000'.\n-----------------\n" +
	"-Para agregar un pago a deuda: usa /deudas para saber los que hay y luego pasa la misma descripción con la palabra PAGO.\n" +
	"Ejemplo: 'pago novaventa 15000'.\n-----------------\n"

// confirmationReply echoes the stored expense back to the user.
func confirmationReply(rec *record.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Guardado: %s | $%s | %s %s", rec.Category, rec.Amount, rec.Date, rec.Time)
	if rec.Merchant != "" {
		fmt.Fprintf(&b, " | %s", rec.Merchant)
	}
	if rec.Account != "" {
		fmt.Fprintf(&b, " | %s", rec.Account)
	}
	return b.String()
}

// kindLabel names an entry kind in replies about the debt ledger.
func kindLabel(kind extractor.EntryKind) string {
	switch kind {
	case extractor.KindDebt:
		return "Deuda"
	case extractor.KindDebtor:
		return "Deudor"
	case extractor.KindPayment:
		return "Pago"
	case extractor.KindInstallment:
		return "Abono"
	}
	return "Registro"
}
