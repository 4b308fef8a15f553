package tokenizer

// numberWords maps nominative Russian cardinals to their values.
var numberWords = map[string]int64{
	"ноль":         0,
	"один":         1,
	"одна":         1,
	"одно":         1,
	"два":          2,
	"две":          2,
	"три":          3,
	"четыре":       4,
	"пять":         5,
	"шесть":        6,
	"семь":         7,
	"восемь":       8,
	"девять":       9,
	"десять":       10,
	"одиннадцать":  11,
	"двенадцать":   12,
	"тринадцать":   13,
	"четырнадцать": 14,
	"пятнадцать":   15,
	"шестнадцать":  16,
	"семнадцать":   17,
	"восемнадцать": 18,
	"девятнадцать": 19,
	"двадцать":     20,
	"тридцать":     30,
	"сорок":        40,
	"пятьдесят":    50,
	"шестьдесят":   60,
	"семьдесят":    70,
	"восемьдесят":  80,
	"девяносто":    90,
	"сто":          100,
	"двести":       200,
	"триста":       300,
	"четыреста":    400,
	"пятьсот":      500,
	"шестьсот":     600,
	"семьсот":      700,
	"восемьсот":    800,
	"девятьсот":    900,
	"тысяча":       1000,
}
