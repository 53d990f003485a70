package product

// Product is a catalog entry. Price is in whole currency units and Stock is
// only ever changed by checkout.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Stock       int    `json:"stock"`
}

// Seed returns the catalog every process starts with, in display order.
func Seed() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Pintura Roja Concentrada",
			Price:       45000,
			Image:       "https://via.placeholder.com/300x200/FF0000/FFFFFF?text=Rojo",
			Description: "Galón de pintura roja concentrada de alta calidad",
			Stock:       50,
		},
		{
			ID:          2,
			Name:        "Pintura Azul Concentrada",
			Price:       42000,
			Image:       "https://via.placeholder.com/300x200/0000FF/FFFFFF?text=Azul",
			Description: "Galón de pintura azul concentrada de alta calidad",
			Stock:       30,
		},
		{
			ID:          3,
			Name:        "Pintura Verde Concentrada",
			Price:       44000,
			Image:       "https://via.placeholder.com/300x200/00FF00/000000?text=Verde",
			Description: "Galón de pintura verde concentrada de alta calidad",
			Stock:       25,
		},
		{
			ID:          4,
			Name:        "Pintura Amarilla Concentrada",
			Price:       43000,
			Image:       "https://via.placeholder.com/300x200/FFFF00/000000?text=Amarillo",
			Description: "Galón de pintura amarilla concentrada de alta calidad",
			Stock:       40,
		},
		{
			ID:          5,
			Name:        "Pintura Negra Concentrada",
			Price:       41000,
			Image:       "https://via.placeholder.com/300x200/000000/FFFFFF?text=Negro",
			Description: "Galón de pintura negra concentrada de alta calidad",
			Stock:       35,
		},
		{
			ID:          6,
			Name:        "Pintura Blanca Concentrada",
			Price:       40000,
			Image:       "https://via.placeholder.com/300x200/FFFFFF/000000?text=Blanco",
			Description: "Galón de pintura blanca concentrada de alta calidad",
			Stock:       60,
		},
	}
}
