package entity

// Category representa una categoría de productos. Los productos referencian
// la categoría por nombre (así lo hace el almacén original), de ahí que el
// nombre sea único.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
