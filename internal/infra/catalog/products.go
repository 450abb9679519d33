package catalog

import "herbaciarnia/internal/domain/entity"

// products is the shop's assortment, in canonical catalog order.
var products = []entity.Product{
	{
		ID:                1,
		Name:              "Zielona herbata Sencha",
		Price:             24.99,
		Image:             "/herbata1.jpg",
		Category:          "zielona",
		Description:       "Klasyczna japońska zielona herbata o świeżym, trawiastym aromacie i łagodnym smaku.",
		Availability:      true,
		Popularity:        4.5,
		LowestPrice30Days: 22.50,
	},
	{
		ID:                2,
		Name:              "Czarna herbata Earl Grey",
		Price:             19.99,
		Image:             "/herbata2.jpg",
		Category:          "czarna",
		Description:       "Aromatyczna czarna herbata z dodatkiem olejku bergamotowego, idealna na popołudnie.",
		Availability:      true,
		Popularity:        4.8,
		LowestPrice30Days: 18.00,
	},
	{
		ID:                   3,
		Name:                 "Biała herbata Silver Needle",
		Price:                29.99,
		Image:                "/herbata3.jpg",
		Category:             "biała",
		Promotion:            true,
		PriceBeforePromotion: 39.99,
		Description:          "Ekskluzywna biała herbata składająca się z młodych pączków, o subtelnym, słodkawym smaku.",
		Availability:         true,
		Popularity:           4.2,
		LowestPrice30Days:    28.00,
	},
	{
		ID:                4,
		Name:              "Herbata Oolong",
		Price:             27.99,
		Image:             "/herbata4.jpg",
		Category:          "oolong",
		Description:       "Półfermentowana herbata o złożonym smaku, łącząca cechy herbat zielonych i czarnych.",
		Availability:      true,
		Popularity:        4.0,
		LowestPrice30Days: 25.00,
	},
	{
		ID:                   5,
		Name:                 "Herbata Rooibos",
		Price:                22.99,
		Image:                "/herbata5.jpg",
		Category:             "ziołowa",
		Promotion:            true,
		PriceBeforePromotion: 29.99,
		Description:          "Bezkofeinowa czerwona herbata z Południowej Afryki, o naturalnie słodkim smaku.",
		Availability:         true,
		Popularity:           4.3,
		LowestPrice30Days:    20.00,
	},
	{
		ID:                6,
		Name:              "Matcha Premium",
		Price:             49.99,
		Image:             "/herbata6.jpg",
		Category:          "zielona",
		Description:       "Wysokiej jakości sproszkowana zielona herbata, tradycyjnie używana w japońskiej ceremonii parzenia herbaty.",
		Availability:      true,
		Popularity:        4.7,
		LowestPrice30Days: 45.00,
	},
	{
		ID:                7,
		Name:              "Czarna herbata Assam",
		Price:             18.99,
		Image:             "/herbata7.jpg",
		Category:          "czarna",
		Description:       "Mocna czarna herbata z regionu Assam w Indiach, idealna na poranną filiżankę.",
		Availability:      true,
		Popularity:        4.4,
		LowestPrice30Days: 17.50,
	},
	{
		ID:                8,
		Name:              "Ziołowa herbata miętowa",
		Price:             15.99,
		Image:             "/herbata8.jpg",
		Category:          "ziołowa",
		Description:       "Orzeźwiająca herbata miętowa, doskonała na trawienie i relaks.",
		Availability:      true,
		Popularity:        4.1,
		LowestPrice30Days: 14.00,
	},
	{
		ID:                   9,
		Name:                 "Herbata jaśminowa",
		Price:                26.99,
		Image:                "/herbata9.jpg",
		Category:             "zielona",
		Promotion:            true,
		PriceBeforePromotion: 32.99,
		Description:          "Zielona herbata aromatyzowana kwiatami jaśminu, o subtelnym, kwiatowym aromacie.",
		Availability:         true,
		Popularity:           4.6,
		LowestPrice30Days:    25.00,
	},
	{
		ID:                10,
		Name:              "Herbata Chai",
		Price:             23.99,
		Image:             "/herbata10.jpg",
		Category:          "czarna",
		Description:       "Indyjska herbata korzenna z cynamonem, kardamonem, imbirem i goździkami.",
		Availability:      true,
		Popularity:        4.9,
		LowestPrice30Days: 22.00,
	},
	{
		ID:                11,
		Name:              "Herbata Pu-erh",
		Price:             34.99,
		Image:             "/herbata11.jpg",
		Category:          "pu-erh",
		Description:       "Fermentowana herbata o ziemistym smaku, ceniona za właściwości wspomagające trawienie.",
		Availability:      true,
		Popularity:        3.9,
		LowestPrice30Days: 33.00,
	},
	{
		ID:                   12,
		Name:                 "Herbata z owoców leśnych",
		Price:                17.99,
		Image:                "/herbata12.jpg",
		Category:             "owocowa",
		Promotion:            true,
		PriceBeforePromotion: 21.99,
		Description:          "Aromatyczna mieszanka suszonych owoców leśnych, doskonała na gorąco i na zimno.",
		Availability:         true,
		Popularity:           4.2,
		LowestPrice30Days:    16.50,
	},
}
