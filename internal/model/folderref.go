package model

import "strings"

// FolderRef - нормализованная ссылка на папку: корень или конкретный id.
type FolderRef struct {
	id string
}

// RootFolder - ссылка на корень иерархии пользователя.
var RootFolder = FolderRef{}

// NormalizeFolderRef приводит входное значение folder id к FolderRef.
// Пустая строка и литералы "null", "root", "undefined" означают корень.
func NormalizeFolderRef(raw string) FolderRef {
	v := strings.TrimSpace(raw)
	switch v {
	case "", "null", "root", "undefined":
		return RootFolder
	}
	return FolderRef{id: v}
}

// IsRoot reports whether the reference points at the root.
func (r FolderRef) IsRoot() bool { return r.id == "" }

// ID returns the folder id, empty for root.
func (r FolderRef) ID() string { return r.id }

// Ptr returns the value to store in a nullable folder column.
func (r FolderRef) Ptr() *string {
	if r.IsRoot() {
		return nil
	}
	id := r.id
	return &id
}
