package tracking_code

import (
	"fmt"
	"math/rand/v2"
)

const (
	codePrefix = "CF"
	codeSuffix = "BR"
	codeDigits = 1_000_000_000
)

// CodeFactory генерирует трек-коды вида CF + 9 случайных цифр + BR.
// Коллизии возможны и разруливаются уникальным констрейнтом в БД,
// ретраи на стороне сервиса.
type CodeFactory struct{}

func New() *CodeFactory {
	return &CodeFactory{}
}

func (f *CodeFactory) NewTrackingCode() string {
	return fmt.Sprintf("%s%09d%s", codePrefix, rand.Int64N(codeDigits), codeSuffix)
}
