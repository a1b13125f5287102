package cmd

import (
	"errors"

	"maitred/internal/core/domain/model/catalog"
	"maitred/internal/core/domain/model/kernel"
)

// defaultCatalog builds the restaurant's standing menu. Seeding upserts by
// name, so price edits here reach an existing database on the next boot.
func defaultCatalog() ([]*catalog.Dinner, []*catalog.Style, []*catalog.MenuItem, error) {
	wine, err1 := catalog.NewComponent("wine", 1, 3000)
	steak, err2 := catalog.NewComponent("steak", 1, 25000)
	salad, err3 := catalog.NewComponent("salad", 1, 5000)
	cake, err4 := catalog.NewComponent("cake", 1, 8000)
	coffee, err5 := catalog.NewComponent("coffee", 1, 2000)
	baguette, err6 := catalog.NewComponent("baguette", 2, 2000)
	feastBread, err7 := catalog.NewComponent("baguette", 4, 2000)
	champagne, err8 := catalog.NewComponent("champagne", 1, 15000)
	if err := errors.Join(err1, err2, err3, err4, err5, err6, err7, err8); err != nil {
		return nil, nil, nil, err
	}

	valentine, err1 := catalog.NewDinner(kernel.NewUUID(), "Valentine Dinner", "발렌타인 디너",
		50000, []catalog.Component{wine, steak, salad, cake}, nil, true)
	french, err2 := catalog.NewDinner(kernel.NewUUID(), "French Dinner", "프렌치 디너",
		45000, []catalog.Component{coffee, wine, salad, steak}, nil, true)
	english, err3 := catalog.NewDinner(kernel.NewUUID(), "English Dinner", "잉글리시 디너",
		40000, []catalog.Component{steak, baguette, salad, coffee}, nil, true)
	feast, err4 := catalog.NewDinner(kernel.NewUUID(), "Champagne Feast Dinner", "샴페인 축제 디너",
		70000, []catalog.Component{champagne, feastBread, coffee, wine}, []string{"Simple"}, true)
	if err := errors.Join(err1, err2, err3, err4); err != nil {
		return nil, nil, nil, err
	}

	simple, err1 := catalog.NewStyle(kernel.NewUUID(), "Simple", "심플", 0, true)
	grand, err2 := catalog.NewStyle(kernel.NewUUID(), "Grand", "그랜드", 5000, true)
	deluxe, err3 := catalog.NewStyle(kernel.NewUUID(), "Deluxe", "디럭스", 10000, true)
	if err := errors.Join(err1, err2, err3); err != nil {
		return nil, nil, nil, err
	}

	extraWine, err1 := catalog.NewMenuItem(kernel.NewUUID(), "Wine", "와인", "wine", 30000, true)
	extraSteak, err2 := catalog.NewMenuItem(kernel.NewUUID(), "Steak", "스테이크", "food", 35000, true)
	extraCoffee, err3 := catalog.NewMenuItem(kernel.NewUUID(), "Coffee", "커피", "beverage", 7000, true)
	extraSalad, err4 := catalog.NewMenuItem(kernel.NewUUID(), "Salad", "샐러드", "food", 12000, true)
	extraCake, err5 := catalog.NewMenuItem(kernel.NewUUID(), "Cake", "케이크", "dessert", 15000, true)
	extraBaguette, err6 := catalog.NewMenuItem(kernel.NewUUID(), "Baguette", "바게트", "bakery", 5000, true)
	extraChampagne, err7 := catalog.NewMenuItem(kernel.NewUUID(), "Champagne", "샴페인", "wine", 60000, true)
	if err := errors.Join(err1, err2, err3, err4, err5, err6, err7); err != nil {
		return nil, nil, nil, err
	}

	dinners := []*catalog.Dinner{valentine, french, english, feast}
	styles := []*catalog.Style{simple, grand, deluxe}
	menuItems := []*catalog.MenuItem{
		extraWine, extraSteak, extraCoffee, extraSalad, extraCake, extraBaguette, extraChampagne,
	}
	return dinners, styles, menuItems, nil
}
