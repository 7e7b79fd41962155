package ports

// Confirmer asks the user whether existing files may be overwritten
type Confirmer interface {
	ConfirmOverwrite(conflicts []string) (bool, error)
}
