package events

import "regexp"

// Matcher выбирает имена событий: одно точное имя или регулярное выражение.
// Нулевой Matcher не выбирает ничего.
type Matcher struct {
	name    string
	pattern *regexp.Regexp
}

// Exact выбирает одно имя события.
func Exact(name string) Matcher {
	return Matcher{name: name}
}

// Pattern компилирует expr и выбирает все имена, в которых оно находит совпадение.
func Pattern(expr string) (Matcher, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Matcher{}, err
	}
	return Matcher{pattern: re}, nil
}

// MustPattern как Pattern, но паникует на ошибочном выражении.
func MustPattern(expr string) Matcher {
	return Matcher{pattern: regexp.MustCompile(expr)}
}

// Match сообщает, выбирает ли m имя name.
func (m Matcher) Match(name string) bool {
	if m.pattern != nil {
		return m.pattern.MatchString(name)
	}
	return m.name != "" && m.name == name
}

// IsPattern сообщает, построен ли m из регулярного выражения.
func (m Matcher) IsPattern() bool {
	return m.pattern != nil
}

// Equal сообщает, выбирают ли оба селектора по одному имени или выражению.
func (m Matcher) Equal(o Matcher) bool {
	if m.IsPattern() != o.IsPattern() {
		return false
	}
	if m.IsPattern() {
		return m.pattern.String() == o.pattern.String()
	}
	return m.name == o.name
}

func (m Matcher) String() string {
	if m.pattern != nil {
		return "/" + m.pattern.String() + "/"
	}
	return m.name
}
