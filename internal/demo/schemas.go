package demo

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/gridgallery/internal/dataset"
	"github.com/rshade/gridgallery/internal/query"
	"github.com/rshade/gridgallery/internal/summary"
)

const maxStars = 5

//nolint:gochecknoglobals // Shared formatter, safe for concurrent use.
var printer = message.NewPrinter(language.English)

// YesNo renders a boolean the way the grids display it.
func YesNo(v bool) string {
	if v {
		return "Sí"
	}
	return "No"
}

// Stars renders n filled stars out of five.
func Stars(n int) string {
	n = max(0, min(n, maxStars))
	return strings.Repeat("★", n) + strings.Repeat("☆", maxStars-n)
}

// Price renders a euro amount with two decimals.
func Price(v float64) string {
	return printer.Sprintf("%.2f €", v)
}

func yesNo[T any](f query.Field[T], value func(T) bool) query.Field[T] {
	return f.WithFormat(func(row T) string { return YesNo(value(row)) })
}

// MenuSchema describes dataset.MenuItem.
func MenuSchema() *query.Schema[dataset.MenuItem] {
	type m = dataset.MenuItem

	onOffer := func(r m) bool { return r.OnOffer }
	vegan := func(r m) bool { return r.Vegan }
	glutenFree := func(r m) bool { return r.GlutenFree }
	servedCold := func(r m) bool { return r.ServedCold }
	delivery := func(r m) bool { return r.DeliveryAvailable }

	return query.NewSchema(
		query.Int("id", "ID", func(r m) int { return r.ID }),
		query.Text("name", "Nombre", func(r m) string { return r.Name }),
		query.Enum("category", "Categoría", func(r m) string { return r.Category }),
		query.Float("price", "Precio (€)", func(r m) float64 { return r.Price }, 2).
			WithFormat(func(r m) string { return Price(r.Price) }),
		query.Int("stock", "Stock", func(r m) int { return r.Stock }),
		yesNo(query.Bool("onOffer", "Oferta", onOffer), onOffer),
		query.Int("rating", "Rating", func(r m) int { return r.Rating }).
			WithFormat(func(r m) string { return printer.Sprintf("%s (%.1f)", Stars(r.Rating), float64(r.Rating)) }),
		query.Int("calories", "Calorías", func(r m) int { return r.Calories }),
		query.Text("description", "Descripción", func(r m) string { return r.Description }),
		query.Enum("portionSize", "Tamaño porción", func(r m) string { return r.PortionSize }),
		query.Int("prepMinutes", "Tiempo prep (min)", func(r m) int { return r.PrepMinutes }),
		yesNo(query.Bool("vegan", "Vegano", vegan), vegan),
		yesNo(query.Bool("glutenFree", "Sin gluten", glutenFree), glutenFree),
		query.Enum("spiceLevel", "Picante", func(r m) string { return r.SpiceLevel }),
		yesNo(query.Bool("servedCold", "Servido frío", servedCold), servedCold),
		query.Int("protein", "Proteínas (g)", func(r m) int { return r.Protein }),
		query.Int("fat", "Grasas (g)", func(r m) int { return r.Fat }),
		query.Int("carbs", "Carbohidratos (g)", func(r m) int { return r.Carbs }),
		query.Int("sugar", "Azúcar (g)", func(r m) int { return r.Sugar }),
		query.Int("sodium", "Sodio (mg)", func(r m) int { return r.Sodium }).
			WithFormat(func(r m) string { return printer.Sprintf("%d", r.Sodium) }),
		query.Int("popularity", "Popularidad", func(r m) int { return r.Popularity }).
			WithFormat(func(r m) string { return printer.Sprintf("%s (%d/5)", Stars(r.Popularity), r.Popularity) }),
		query.Text("sku", "Código SKU", func(r m) string { return r.SKU }),
		yesNo(query.Bool("deliveryAvailable", "Delivery", delivery), delivery),
	)
}

// UserSchema describes dataset.UserRecord.
func UserSchema() *query.Schema[dataset.UserRecord] {
	type u = dataset.UserRecord

	return query.NewSchema(
		query.Int("id", "ID", func(r u) int { return r.ID }),
		query.Text("name", "Nombre", func(r u) string { return r.Name }),
		query.Text("email", "Email", func(r u) string { return r.Email }),
		query.Int("age", "Edad", func(r u) int { return r.Age }),
		query.Text("city", "Ciudad", func(r u) string { return r.City }),
		query.Enum("role", "Rol", func(r u) string { return r.Role }),
		query.Enum("status", "Estado", func(r u) string { return r.Status }),
		query.Enum("department", "Departamento", func(r u) string { return r.Department }),
		query.Text("joinDate", "Fecha alta", func(r u) string { return r.JoinDate }),
	)
}

// TaskSchema describes dataset.TaskRecord.
func TaskSchema() *query.Schema[dataset.TaskRecord] {
	type t = dataset.TaskRecord

	return query.NewSchema(
		query.Int("id", "ID", func(r t) int { return r.ID }),
		query.Text("title", "Título", func(r t) string { return r.Title }),
		query.Text("owner", "Responsable", func(r t) string { return r.Owner }),
		query.Enum("priority", "Prioridad", func(r t) string { return r.Priority }),
		query.Enum("status", "Estado", func(r t) string { return r.Status }),
		query.Enum("project", "Proyecto", func(r t) string { return r.Project }),
		query.Text("dueDate", "Fecha límite", func(r t) string { return r.DueDate }),
		query.Int("progress", "Progreso", func(r t) int { return r.Progress }).
			WithFormat(func(r t) string { return printer.Sprintf("%d%%", r.Progress) }),
	)
}

// UserSummary aggregates status counts and the rounded mean age.
func UserSummary(rows []dataset.UserRecord) summary.Summary {
	return summary.Summarize(rows,
		func(r dataset.UserRecord) string { return r.Status },
		dataset.UserStatuses.Values(),
		func(r dataset.UserRecord) float64 { return float64(r.Age) },
	)
}
