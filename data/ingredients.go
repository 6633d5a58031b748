// Package data holds the built-in lookup tables.
package data

import "github.com/ellekaen/VanityOS-Api/models"

// Ingredients is the comedogenic table, in lookup priority order.
// Aliases are the food names users type for each carrier.
func Ingredients() []models.IngredientRecord {
	return []models.IngredientRecord{
		{
			Name:          "Pumpkin Seed Oil",
			Aliases:       []string{"pumpkin seed", "pumpkin seeds"},
			Grade:         models.GradeOf(0),
			IsComedogenic: false,
			Properties:    "Non-comedogenic, excellent for acne-prone skin",
			Benefits:      "Rich in zinc, omega-3 and omega-6 fatty acids; calms redness",
			SkinTypes:     []models.SkinType{models.SkinAcneProne, models.SkinOily, models.SkinCombination},
		},
		{
			Name:          "Avocado Oil",
			Aliases:       []string{"avocado"},
			Grade:         models.GradeRange(2, 3),
			IsComedogenic: true,
			Properties:    "Moderately comedogenic, use with caution on oily/acne-prone skin",
			Benefits:      "Deeply nourishing; vitamins A, D and E",
			SkinTypes:     []models.SkinType{models.SkinDry, models.SkinMature},
		},
		{
			Name:          "Coconut Oil",
			Aliases:       []string{"coconut"},
			Grade:         models.GradeOf(4),
			IsComedogenic: true,
			Properties:    "Highly comedogenic, avoid on acne-prone skin; recommended for body use only",
			Benefits:      "Emollient and antimicrobial lauric acid for body skin and hair",
			SkinTypes:     []models.SkinType{models.SkinDry},
		},
		{
			Name:          "Olive Oil",
			Aliases:       []string{"olive"},
			Grade:         models.GradeOf(2),
			IsComedogenic: true,
			Properties:    "Moderately comedogenic, may clog pores",
			Benefits:      "Antioxidant polyphenols and squalene",
			SkinTypes:     []models.SkinType{models.SkinDry, models.SkinNormal},
		},
		{
			Name:          "Argan Oil",
			Aliases:       []string{"argan"},
			Grade:         models.GradeOf(0),
			IsComedogenic: false,
			Properties:    "Non-comedogenic, suitable for all skin types",
			Benefits:      "Vitamin E and linoleic acid; softens and balances",
			SkinTypes:     []models.SkinType{models.SkinAll},
		},
		{
			Name:          "Jojoba Oil",
			Aliases:       []string{"jojoba"},
			Grade:         models.GradeOf(0),
			IsComedogenic: false,
			Properties:    "Non-comedogenic, mimics skin's natural sebum",
			Benefits:      "Balances oil production and soothes",
			SkinTypes:     []models.SkinType{models.SkinAll},
		},
		{
			Name:          "Almond Oil",
			Aliases:       []string{"almond"},
			Grade:         models.GradeRange(1, 2),
			IsComedogenic: false,
			Properties:    "Low to moderately comedogenic",
			Benefits:      "Vitamin E rich, gentle emollient",
			SkinTypes:     []models.SkinType{models.SkinDry, models.SkinNormal, models.SkinSensitive},
		},
		{
			Name:          "Grapeseed Oil",
			Aliases:       []string{"grapeseed"},
			Grade:         models.GradeOf(1),
			IsComedogenic: false,
			Properties:    "Low comedogenic potential, suitable for most skin types",
			Benefits:      "Light texture, high in linoleic acid",
			SkinTypes:     []models.SkinType{models.SkinOily, models.SkinCombination, models.SkinAcneProne},
		},
		{
			Name:          "Sunflower Oil",
			Aliases:       []string{"sunflower"},
			Grade:         models.GradeRange(0, 1),
			IsComedogenic: false,
			Properties:    "Non to low comedogenic, good for sensitive skin",
			Benefits:      "Supports the skin barrier",
			SkinTypes:     []models.SkinType{models.SkinSensitive, models.SkinNormal, models.SkinAcneProne},
		},
		{
			Name:          "Shea Butter",
			Grade:         models.GradeOf(0),
			IsComedogenic: false,
			Properties:    "Non-comedogenic, excellent moisturizer",
			Benefits:      "Fatty acids and vitamins A and E; repairs dry patches",
			SkinTypes:     []models.SkinType{models.SkinDry, models.SkinSensitive, models.SkinNormal},
		},
		{
			Name:          "Cocoa Butter",
			Aliases:       []string{"cocoa"},
			Grade:         models.GradeOf(4),
			IsComedogenic: true,
			Properties:    "Highly comedogenic, heavy and pore-clogging",
			Benefits:      "Rich occlusive for body and lips",
			SkinTypes:     []models.SkinType{models.SkinDry},
		},
		{
			Name:          "Sesame Oil",
			Aliases:       []string{"sesame"},
			Grade:         models.GradeRange(1, 2),
			IsComedogenic: false,
			Properties:    "Low to moderately comedogenic",
			Benefits:      "Antioxidant sesamol; mildly anti-inflammatory",
			SkinTypes:     []models.SkinType{models.SkinNormal, models.SkinDry},
		},
		{
			Name:          "Rosehip Seed Oil",
			Aliases:       []string{"rosehip", "rosehip seed", "rosehip oil"},
			Grade:         models.GradeOf(0),
			IsComedogenic: false,
			Properties:    "Non-comedogenic, excellent for acne-prone and aging skin",
			Benefits:      "Vitamin A and C precursors; fades marks",
			SkinTypes:     []models.SkinType{models.SkinAcneProne, models.SkinMature, models.SkinDry},
		},
		{
			Name:          "Castor Oil",
			Aliases:       []string{"castor"},
			Grade:         models.GradeOf(0),
			IsComedogenic: false,
			Properties:    "Non-comedogenic, viscous oil",
			Benefits:      "Ricinoleic acid; used in oil cleansing blends",
			SkinTypes:     []models.SkinType{models.SkinOily, models.SkinAcneProne},
		},
	}
}
