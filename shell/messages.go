package shell

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// indonesian holds the Bahasa Indonesia form strings.
var indonesian = [][2]string{
	{"Patient data", "Data Pasien"},
	{"Press Enter to predict, q to quit: ", "Tekan Enter untuk prediksi, q untuk keluar: "},
	{"Risk level (%s): %s %s\n", "Tingkat Risiko (%s): %s %s\n"},
	{"Probability per risk level:", "Probabilitas untuk setiap tingkat risiko:"},
	{"Model comparison:", "Perbandingan model:"},
	{"Model\tPrediction\tConfidence\t", "Model\tPrediksi\tKeyakinan\t"},
	{"Please complete all input fields (missing: %s).\n", "Mohon lengkapi semua input data (kosong: %s).\n"},
	{"Unexpected error: %v\n", "Terjadi kesalahan tak terduga: %v\n"},
	{"Notes:", "Catatan Penting:"},
	{"Maternal health risk prediction", "Prediksi Risiko Kesehatan Ibu"},
	{"Models in use: %s\n", "Model yang digunakan: %s\n"},
	{"How to use:", "Cara Penggunaan:"},
	{"Enter a value for each patient field; press Enter to keep the default.", "Masukkan nilai untuk setiap data pasien; tekan Enter untuk memakai nilai bawaan."},
	{"Press Enter at the predict prompt.", "Tekan Enter pada baris prediksi."},
	{"Read the predicted risk level and its probabilities.", "Lihat hasil prediksi tingkat risiko dan probabilitasnya."},
	{
		"This tool is a demonstration and must not replace a professional medical diagnosis.",
		"Aplikasi ini adalah demonstrasi dan tidak boleh digunakan sebagai pengganti diagnosis medis profesional.",
	},
	{
		"The models were trained on historical data and may perform differently on new data.",
		"Model ini dilatih pada data historis dan kinerjanya mungkin bervariasi pada data baru.",
	},
}

// newPrinter returns a printer for lang. Unknown or unparsable tags, and a
// catalog that fails to build, print the English keys unchanged.
func newPrinter(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	b, err := buildCatalog(indonesian)
	if err != nil {
		return message.NewPrinter(language.English, message.Catalog(catalog.NewBuilder()))
	}
	return message.NewPrinter(tag, message.Catalog(b))
}

func buildCatalog(pairs [][2]string) (*catalog.Builder, error) {
	b := catalog.NewBuilder()
	for _, pair := range pairs {
		if err := b.SetString(language.Indonesian, pair[0], pair[1]); err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", pair[0], err)
		}
	}
	return b, nil
}
