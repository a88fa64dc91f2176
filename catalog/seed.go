package catalog

import "github.com/naxo-910/elsabor-api/models"

// Seed returns the base store inventory.
func Seed() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Empanada Camarón Queso",
			Price:       2000,
			Stock:       50,
			Category:    "Empanadas",
			ImageURL:    "/images/empadas/camaronqueso/camaronqueso.jpg",
			IsOffer:     true,
			Description: "Deliciosa masa rellena de camarones salteados y abundante queso derretido.",
		},
		{
			ID:          2,
			Name:        "Empanada Pino Casera",
			Price:       1300,
			Stock:       60,
			Category:    "Empanadas",
			ImageURL:    "/images/empadas/de pino/de pino.jpg",
			IsOffer:     false,
			Description: "La auténtica empanada chilena de pino con carne picada, cebolla, huevo y aceituna.",
		},
		{
			ID:          3,
			Name:        "Hand Roll",
			Price:       3000,
			Stock:       40,
			Category:    "Sushi",
			ImageURL:    "/images/sushi/hand-roll.jpg",
			IsOffer:     false,
			Description: "Alga nori, arroz, pollo, palta y queso crema.",
		},
		{
			ID:          4,
			Name:        "Empanada Jamón Queso",
			Price:       1200,
			Stock:       75,
			Category:    "Empanadas",
			ImageURL:    "/images/empadas/jamonqueso/jamonqueso.jpg",
			IsOffer:     true,
			Description: "La clásica de jamón y queso, perfecta para un snack.",
		},
		{
			ID:          5,
			Name:        "Bebida Express (Lata)",
			Price:       1000,
			Stock:       100,
			Category:    "Bebidas",
			ImageURL:    "/images/bebidas/bebidas.jpg",
			IsOffer:     false,
			Description: "Bebida en lata (350cc), elige tu sabor favorito.",
		},
		{
			ID:          6,
			Name:        "Bolitas Crispy (Sushi)",
			Price:       500,
			Stock:       30,
			Category:    "Sushi",
			ImageURL:    "/images/sushi/bolitaskryspy.jpg",
			IsOffer:     false,
			Description: "Bocados de arroz crujientes rellenos de pollo y queso. Oferta: 4x$2000.",
		},
		{
			ID:          7,
			Name:        "Empanada Solo Queso",
			Price:       1000,
			Stock:       80,
			Category:    "Empanadas",
			ImageURL:    "/images/empadas/queso/queso.jpg",
			IsOffer:     false,
			Description: "La favorita para los amantes del queso. Cremosa y muy sabrosa.",
		},
		{
			ID:          8,
			Name:        "Empanada Napolitana",
			Price:       1300,
			Stock:       55,
			Category:    "Empanadas",
			ImageURL:    "/images/empadas/napolitana/napolitana.jpg",
			IsOffer:     false,
			Description: "Queso, tomate y orégano. El sabor de una pizza en una empanada.",
		},
		{
			ID:          9,
			Name:        "Empanada Pollo Queso",
			Price:       1300,
			Stock:       65,
			Category:    "Empanadas",
			ImageURL:    "/images/empadas/polloqueso/polloqueso.jpg",
			IsOffer:     false,
			Description: "La combinación ganadora: suave pollo desmenuzado con queso derretido.",
		},
		{
			ID:          10,
			Name:        "Sopaipillas",
			Price:       350,
			Stock:       120,
			Category:    "Frituras",
			ImageURL:    "/images/sopaipillas/sopaipillas.jpg",
			IsOffer:     true,
			Description: "Unidad: $350. ¡Oferta: 3 por $1.000! Ideales para el invierno o la lluvia.",
		},
		{
			ID:          11,
			Name:        "Churros",
			Price:       350,
			Stock:       90,
			Category:    "Frituras",
			ImageURL:    "/images/churros/churros.jpg",
			IsOffer:     true,
			Description: "Unidad: $350. ¡Oferta: 3 por $1.000! Crujientes y listos para bañar en salsa.",
		},
	}
}
