package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_CountAndIDs(t *testing.T) {
	for _, n := range []int{0, 1, 7, 80, 150} {
		users := Users(n, DateMonth)
		tasks := Tasks(n)
		menu := Menu(n)

		require.Len(t, users, n)
		require.Len(t, tasks, n)
		require.Len(t, menu, n)

		for i := range n {
			assert.Equal(t, i+1, users[i].ID)
			assert.Equal(t, i+1, tasks[i].ID)
			assert.Equal(t, i+1, menu[i].ID)
		}
	}
}

func TestGenerate_EmptyIsNonNil(t *testing.T) {
	assert.NotNil(t, Generate(0, func(int) int { return 0 }))
	assert.NotNil(t, Generate(-3, func(int) int { return 0 }))
	assert.Empty(t, Menu(0))
}

func TestGenerate_Deterministic(t *testing.T) {
	assert.Equal(t, Users(120, DateDay), Users(120, DateDay))
	assert.Equal(t, Tasks(120), Tasks(120))
	assert.Equal(t, Menu(80), Menu(80))
}

func TestPool_At(t *testing.T) {
	p := Pool{"a", "b", "c"}
	assert.Equal(t, "a", p.At(0))
	assert.Equal(t, "c", p.At(5))
	assert.Equal(t, "c", p.At(-1))
	assert.Empty(t, Pool{}.At(3))
	assert.True(t, p.Contains("b"))
	assert.False(t, p.Contains("z"))

	vals := p.Values()
	vals[0] = "mutated"
	assert.Equal(t, "a", p[0])
}

func TestUsers_Fields(t *testing.T) {
	users := Users(100, DateMonth)

	first := users[0]
	assert.Equal(t, "Usuario 1", first.Name)
	assert.Equal(t, "usuario1@mail.com", first.Email)
	assert.Equal(t, 18, first.Age)
	assert.Equal(t, "Ciudad 0", first.City)
	assert.Equal(t, "Admin", first.Role)
	assert.Equal(t, "Activo", first.Status)
	assert.Equal(t, "Ventas", first.Department)
	assert.Equal(t, "2024-01", first.JoinDate)

	u := users[13]
	assert.Equal(t, 14, u.ID)
	assert.Equal(t, 31, u.Age)
	assert.Equal(t, "Usuario", u.Role)
	assert.Equal(t, "Inactivo", u.Status)
	assert.Equal(t, "IT", u.Department)
	assert.Equal(t, "2024-02", u.JoinDate)
}

func TestUsers_DateLayouts(t *testing.T) {
	assert.Equal(t, "2024-07", Users(31, DateMonth)[30].JoinDate)
	assert.Equal(t, "2024-07-01", Users(31, DateFirstOfMonth)[30].JoinDate)
	assert.Equal(t, "2024-07-03", Users(31, DateDay)[30].JoinDate)
}

func TestTasks_Fields(t *testing.T) {
	tasks := Tasks(120)

	assert.Equal(t, TaskRecord{
		ID: 1, Title: "Tarea #1 - Funcionalidad 1", Owner: "Responsable 01",
		Priority: "Alta", Status: "Pendiente", Project: "Web",
		DueDate: "2024-01-01", Progress: 0,
	}, tasks[0])

	assert.Equal(t, TaskRecord{
		ID: 15, Title: "Tarea #15 - Funcionalidad 0", Owner: "Responsable 07",
		Priority: "Baja", Status: "Completada", Project: "Interno",
		DueDate: "2024-03-15", Progress: 98,
	}, tasks[14])

	for _, task := range tasks {
		assert.GreaterOrEqual(t, task.Progress, 0)
		assert.LessOrEqual(t, task.Progress, 100)
	}
	assert.Equal(t, 4, tasks[15].Progress)
}

func TestMenu_RegularItems(t *testing.T) {
	menu := Menu(80)

	drink := menu[1] // ordinal 2
	assert.Equal(t, "Bebida BBQ #2", drink.Name)
	assert.Equal(t, CategoryDrinks, drink.Category)
	assert.InDelta(t, 3.0, drink.Price, 0.001)
	assert.True(t, drink.GlutenFree)
	assert.True(t, drink.ServedCold)
	assert.Equal(t, 82, drink.Calories)
	assert.Equal(t, 17, drink.Sugar)
	assert.Equal(t, "SKU-0002", drink.SKU)

	dessert := menu[2] // ordinal 3
	assert.Equal(t, CategoryDesserts, dessert.Category)
	assert.InDelta(t, 6.0, dessert.Price, 0.001)
	assert.False(t, dessert.DeliveryAvailable)

	salad := menu[3] // ordinal 4
	assert.Equal(t, CategorySalads, salad.Category)
	assert.InDelta(t, 7.0, salad.Price, 0.001)
	assert.True(t, salad.Vegan)
	assert.True(t, salad.OnOffer)

	last := menu[59] // ordinal 60
	assert.False(t, last.IsSpecial())
	assert.Equal(t, "Hamburguesa Clásica #60", last.Name)
	assert.Equal(t, CategoryBurgers, last.Category)
	assert.InDelta(t, 8.0, last.Price, 0.001)
	assert.Equal(t, "SKU-0060", last.SKU)
	assert.Equal(t, "Deliciosa Hamburguesa Clásica #60 con ingredientes frescos.", last.Description)
}

func TestMenu_SpecialBranch(t *testing.T) {
	menu := Menu(80)

	item := menu[60] // ordinal 61
	require.Equal(t, 61, item.ID)
	assert.True(t, item.IsSpecial())
	assert.Equal(t, "Especial del día #61", item.Name)
	assert.Equal(t, CategoryPizzas, item.Category)
	assert.InDelta(t, 10.0, item.Price, 0.001)
	assert.True(t, item.OnOffer)
	assert.True(t, item.DeliveryAvailable)
	assert.Equal(t, 5, item.Popularity)
	assert.Equal(t, "SKU-EX-61", item.SKU)
	assert.Equal(t, specialDescription, item.Description)

	for _, m := range menu[SpecialThreshold:] {
		assert.True(t, SpecialCategories.Contains(m.Category), "special %d has category %s", m.ID, m.Category)
	}
}

func TestSingular(t *testing.T) {
	assert.Equal(t, "Pizza", singular("Pizzas"))
	assert.Equal(t, "Postre", singular("Postres"))
	assert.Empty(t, singular(""))
}
