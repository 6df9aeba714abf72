package rain

import (
	"fmt"
	"sort"

	"github.com/mattn/go-runewidth"
)

var (
	CharsetASCII    = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789)(}{][*&^%$#@!~")
	CharsetKatakana = []rune("ｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉﾊﾋﾌﾍﾎﾏﾐﾑﾒﾓﾔﾕﾖﾗﾘﾙﾚﾛﾜﾝ0123456789")
	CharsetBinary   = []rune("01")
	CharsetHex      = []rune("0123456789ABCDEF")
)

// Charsets maps charset names accepted on the command line and in config
// files to their glyphs.
var Charsets = map[string][]rune{
	"ascii":    CharsetASCII,
	"katakana": CharsetKatakana,
	"binary":   CharsetBinary,
	"hex":      CharsetHex,
}

// CharsetNames returns the known charset names in sorted order.
func CharsetNames() []string {
	names := make([]string, 0, len(Charsets))
	for name := range Charsets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveCharset returns the named charset, or the runes of name itself when
// it is not a known name. Every glyph must occupy exactly one terminal cell.
func ResolveCharset(name string) ([]rune, error) {
	if set, ok := Charsets[name]; ok {
		return set, nil
	}
	if name == "" {
		return nil, ErrEmptyCharset
	}
	set := []rune(name)
	for _, r := range set {
		if w := runewidth.RuneWidth(r); w != 1 {
			return nil, fmt.Errorf("rain: glyph %q has display width %d, need 1", r, w)
		}
	}
	return set, nil
}
