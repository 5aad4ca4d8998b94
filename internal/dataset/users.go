package dataset

import "fmt"

// Categorical pools shared by the user demos.
//
//nolint:gochecknoglobals // Read-only lookup tables.
var (
	Roles        = Pool{"Admin", "Usuario", "Editor"}
	UserStatuses = Pool{"Activo", "Inactivo"}
	Departments  = Pool{"Ventas", "IT", "RRHH", "Marketing"}
)

// cityCount is how many distinct "Ciudad n" values the generator cycles through.
const cityCount = 10

// DateLayout selects how a user's join date is rendered.
type DateLayout int

const (
	// DateMonth renders "2024-03".
	DateMonth DateLayout = iota
	// DateFirstOfMonth renders "2024-03-01".
	DateFirstOfMonth
	// DateDay renders "2024-03-14", the day cycling through 1..28.
	DateDay
)

// UserRecord is one row of the user roster demos.
type UserRecord struct {
	ID         int    `json:"id"         yaml:"id"`
	Name       string `json:"name"       yaml:"name"`
	Email      string `json:"email"      yaml:"email"`
	Age        int    `json:"age"        yaml:"age"`
	City       string `json:"city"       yaml:"city"`
	Role       string `json:"role"       yaml:"role"`
	Status     string `json:"status"     yaml:"status"`
	Department string `json:"department" yaml:"department"`
	JoinDate   string `json:"joinDate"   yaml:"join_date"`
}

// Users generates n user records with join dates rendered per layout.
func Users(n int, layout DateLayout) []UserRecord {
	return Generate(n, func(i int) UserRecord {
		id := i + 1
		return UserRecord{
			ID:         id,
			Name:       fmt.Sprintf("Usuario %d", id),
			Email:      fmt.Sprintf("usuario%d@mail.com", id),
			Age:        18 + i%50,
			City:       fmt.Sprintf("Ciudad %d", i%cityCount),
			Role:       Roles.At(i),
			Status:     UserStatuses.At(i),
			Department: Departments.At(i),
			JoinDate:   joinDate(i, layout),
		}
	})
}

func joinDate(i int, layout DateLayout) string {
	month := i%12 + 1
	switch layout {
	case DateFirstOfMonth:
		return fmt.Sprintf("2024-%02d-01", month)
	case DateDay:
		return fmt.Sprintf("2024-%02d-%02d", month, i%28+1)
	default:
		return fmt.Sprintf("2024-%02d", month)
	}
}
