package classify

import "strings"

// The five bin categories. Every classification resolves to exactly one.
const (
	CategoryHijau  = "hijau"   // organik
	CategoryKuning = "kuning"  // anorganik
	CategoryMerah  = "merah"   // B3 (bahan berbahaya dan beracun)
	CategoryBiru   = "biru"    // kertas
	CategoryAbu    = "abu-abu" // residu
)

// Bin describes one entry of the taxonomy as exposed over the API.
type Bin struct {
	Category    string `json:"category"`
	BinName     string `json:"bin_name"`
	BinColor    string `json:"bin_color"`
	Description string `json:"description"`
}

var binNames = map[string]string{
	CategoryHijau:  "Organik",
	CategoryKuning: "Anorganik",
	CategoryMerah:  "B3",
	CategoryBiru:   "Kertas",
	CategoryAbu:    "Residu",
}

// Bins returns the taxonomy in a stable order (also consumed by the IoT proxy).
func Bins() []Bin {
	return []Bin{
		{CategoryHijau, "Organik", CategoryHijau, "Sampah organik: sisa makanan, daun, kulit buah."},
		{CategoryKuning, "Anorganik", CategoryKuning, "Sampah anorganik: plastik, logam, kaca, karet."},
		{CategoryMerah, "B3", CategoryMerah, "Sampah B3: baterai, elektronik, obat, bahan kimia."},
		{CategoryBiru, "Kertas", CategoryBiru, "Sampah kertas: kertas, kardus, karton."},
		{CategoryAbu, "Residu", CategoryAbu, "Residu: sampah yang tidak termasuk kategori lain."},
	}
}

// ResolveBin normalizes a model-supplied category onto the closed taxonomy.
// Anything unrecognized maps to abu-abu/Residu.
func ResolveBin(category string) (string, string) {
	c := strings.ToLower(strings.TrimSpace(category))
	if name, ok := binNames[c]; ok {
		return c, name
	}
	return CategoryAbu, binNames[CategoryAbu]
}
