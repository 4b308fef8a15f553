package uri

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/open-condo-software/condo-sub035/termin"
)

// keyword is one built-in dictionary entry.
type keyword struct {
	canonical string
	family    Family
	lang      termin.Lang
	variants  []string
}

// builtinKeywords are added before the generic scheme list, so they win
// when a generic line repeats one of their variants.
var builtinKeywords = []keyword{
	{"HTTP", Web, termin.LangEn, nil},
	{"HTTPS", Web, termin.LangEn, nil},
	{"FTP", Web, termin.LangEn, nil},
	{"FTPS", Web, termin.LangEn, nil},
	{"WWW", Web, termin.LangEn, nil},

	{"ISBN", Code, termin.LangEn, []string{"ИСБН"}},
	{"ISO", Code, termin.LangEn, []string{"ИСО"}},
	{"RFC", Code, termin.LangEn, nil},
	{"ГОСТ", Code, termin.LangRu, []string{"GOST"}},
	{"ОСТ", Code, termin.LangRu, nil},
	{"ТУ", Code, termin.LangRu, nil},
	{"УДК", Code, termin.LangRu, []string{"UDC"}},
	{"ББК", Code, termin.LangRu, nil},
	{"ТНВЭД", Code, termin.LangRu, []string{"ТН ВЭД", "ТН-ВЭД"}},
	{"ОКВЭД", Code, termin.LangRu, []string{"ОКВЭД2", "OKVED"}},
	{"ОКФС", Code, termin.LangRu, nil},
	{"ОКОПФ", Code, termin.LangRu, nil},
	{"ОКОГУ", Code, termin.LangRu, nil},
	{"ОКПД", Code, termin.LangRu, []string{"ОКПД2"}},
	{"ОКП", Code, termin.LangRu, nil},
	{"ОКДП", Code, termin.LangRu, nil},
	{"ОКЕИ", Code, termin.LangRu, nil},

	{"SKYPE", Messenger, termin.LangEn, []string{"СКАЙП"}},
	{"SWIFT", Messenger, termin.LangEn, []string{"СВИФТ"}},
	{"ICQ", Messenger, termin.LangEn, nil},

	{"ИНН", Identifier, termin.LangRu, []string{
		"INN",
		"ИДЕНТИФИКАЦИОНН* НОМЕР* НАЛОГОПЛАТЕЛЬЩИК*",
	}},
	{"КПП", Identifier, termin.LangRu, []string{"KPP"}},
	{"ОГРН", Identifier, termin.LangRu, []string{
		"OGRN",
		"ОСНОВН* ГОСУДАРСТВЕНН* РЕГИСТРАЦИОНН* НОМЕР*",
	}},
	{"ОГРНИП", Identifier, termin.LangRu, nil},
	{"БИК", Identifier, termin.LangRu, []string{"BIK"}},
	{"СНИЛС", Identifier, termin.LangRu, nil},
	{"ОКПО", Identifier, termin.LangRu, []string{"OKPO"}},
	{"ОКТМО", Identifier, termin.LangRu, nil},
	{"ОКАТО", Identifier, termin.LangRu, nil},
	{"КБК", Identifier, termin.LangRu, nil},
	{"Р/С", Identifier, termin.LangRu, []string{
		"Р/СЧ", "Р/СЧЕТ", "Р/C", "Р.С.", "Р/СЧ.",
		"РАСЧЕТН* СЧЕТ*", "РАСЧ. СЧЕТ*",
	}},
	{"К/С", Identifier, termin.LangRu, []string{
		"К/СЧ", "К/СЧЕТ", "К/C", "КОРР/СЧЕТ",
		"КОРР. СЧЕТ*", "КОР. СЧЕТ*", "КОРРЕСПОНДЕНТСК* СЧЕТ*",
	}},
	{"Л/С", Identifier, termin.LangRu, []string{
		"Л/СЧ", "Л/СЧЕТ", "Л/C", "ЛИЦЕВ* СЧЕТ*",
	}},
	{"IBAN", Identifier, termin.LangEn, nil},

	{"КАДАСТРОВЫЙ НОМЕР", Cadastre, termin.LangRu, []string{
		"КАДАСТРОВ* НОМЕР*",
		"КАДАСТРОВ* №",
		"КАД. НОМЕР*",
		"КАД. №",
	}},
}

// mailWords are the phrases an e-mail address may be introduced by.
var mailWords = newMailWords()

func newMailWords() *termin.Collection {
	c := termin.NewCollection()
	c.Add(termin.New("E-MAIL", termin.LangEn, int(Email),
		"EMAIL", "MAIL", "E MAIL", "Е-MAIL", "Е-МАЙЛ", "ЕМАЙЛ", "МЫЛО"))
	c.Add(termin.New("ЭЛЕКТРОННАЯ ПОЧТА", termin.LangRu, int(Email),
		"ЭЛЕКТРОНН* ПОЧТ*",
		"ЭЛ. ПОЧТ*",
		"ЭЛ.ПОЧТ*",
		"АДРЕС ЭЛ. ПОЧТ*",
		"АДРЕС ЭЛЕКТРОНН* ПОЧТ*",
		"ПОЧТ*",
	))
	return c
}

// newKeywords builds the dispatch dictionary: the built-in keywords, then
// every generic scheme read from the given lists.
func newKeywords(lists ...io.Reader) (*termin.Collection, error) {
	c := termin.NewCollection()
	for _, k := range builtinKeywords {
		c.Add(termin.New(k.canonical, k.lang, int(k.family), k.variants...))
	}
	for _, r := range lists {
		n, err := loadSchemes(c, r)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, ErrNoSchemes
		}
	}
	return c, nil
}

// loadSchemes adds one Generic termin per non-blank, non-comment line of r
// and returns how many were added.
func loadSchemes(c *termin.Collection, r io.Reader) (int, error) {
	n := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		c.Add(termin.New(strings.ToUpper(line), termin.LangEn, int(Generic)))
		n++
	}
	if err := sc.Err(); err != nil {
		return n, errors.Wrap(ErrNoSchemes, err.Error())
	}
	return n, nil
}
