package scalebar

import (
	"fmt"
	"strings"
)

type BarType int

const (
	SingleDivision BarType = iota
	Alternating
	DoubleAlternating

	NumBarTypes = iota
)

var barTypeNames = map[BarType]string{
	SingleDivision:    "single",
	Alternating:       "alternating",
	DoubleAlternating: "double",
}

func (t BarType) String() string {
	if s, ok := barTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("BarType(%d)", int(t))
}

func ParseBarType(s string) (BarType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range barTypeNames {
		if s == name {
			return t, nil
		}
	}
	switch s {
	case "singledivision":
		return SingleDivision, nil
	case "doublealternating":
		return DoubleAlternating, nil
	}
	return 0, fmt.Errorf("unknown bar type: %q", s)
}

func (t BarType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *BarType) UnmarshalText(b []byte) error {
	u, err := ParseBarType(string(b))
	if err != nil {
		return err
	}
	*t = u
	return nil
}

//----------

type LabelOption int

const (
	LabelEdges LabelOption = iota
	LabelCenter

	NumLabelOptions = iota
)

func (o LabelOption) String() string {
	switch o {
	case LabelEdges:
		return "edges"
	case LabelCenter:
		return "center"
	}
	return fmt.Sprintf("LabelOption(%d)", int(o))
}

func ParseLabelOption(s string) (LabelOption, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "edges":
		return LabelEdges, nil
	case "center":
		return LabelCenter, nil
	}
	return 0, fmt.Errorf("unknown label option: %q", s)
}

func (o LabelOption) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *LabelOption) UnmarshalText(b []byte) error {
	u, err := ParseLabelOption(string(b))
	if err != nil {
		return err
	}
	*o = u
	return nil
}

//----------

type Config struct {
	BarType     BarType
	LabelOption LabelOption
}
