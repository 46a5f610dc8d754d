package model

import "fmt"

// ItemKind различает коллекции, над которыми работает rename.
type ItemKind int

const (
	KindFile ItemKind = iota + 1
	KindFolder
)

// ParseItemKind разбирает значение поля "type" из запроса.
func ParseItemKind(s string) (ItemKind, error) {
	switch s {
	case "file":
		return KindFile, nil
	case "folder":
		return KindFolder, nil
	}
	return 0, fmt.Errorf("unknown item type %q", s)
}

func (k ItemKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindFolder:
		return "folder"
	}
	return "unknown"
}
