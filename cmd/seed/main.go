// seed genera un script SQL con datos de demostración: usuarios de cada rol,
// tarifas base por ruta, reglas de margen, rangos de peso y rutas de proveedor.
//
// Uso: go run ./cmd/seed [password-demo]
// Por defecto la contraseña de todos los usuarios demo es "eonlogistics".
// Escribe: internal/infrastructure/postgres/migrations/010_seed_demo.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type demoUser struct {
	name  string
	email string
	role  string
}

type demoRate struct {
	origin      string
	destination string
	baseRate    string
}

var demoUsers = []demoUser{
	{"EON Admin", "admin@eonlogisticgroup.com", "admin"},
	{"ACME Industrial", "compras@acme.mx", "cliente"},
	{"Cervecería del Norte", "logistica@cerveceriadelnorte.mx", "cliente"},
	{"Transportes Norte", "ops@tnorte.mx", "proveedor"},
	{"Fletes Bajío", "contacto@fletesbajio.mx", "proveedor"},
}

var demoRates = []demoRate{
	{"Monterrey", "CDMX", "12.50"},
	{"CDMX", "Monterrey", "12.50"},
	{"Monterrey", "Guadalajara", "10.80"},
	{"Guadalajara", "CDMX", "9.40"},
	{"CDMX", "Veracruz", "8.75"},
}

func main() {
	password := "eonlogistics"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar hash: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "010_seed_demo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Datos de demostración\n")
	out.WriteString("-- Generado con cmd/seed; la contraseña de todos los usuarios es la indicada al generar.\n\n")

	// 1. Usuarios (un hash bcrypt compartido para la demo)
	out.WriteString("-- 1. Usuarios\n")
	out.WriteString("INSERT INTO users (id, name, email, password_hash, role) VALUES\n")
	for i, u := range demoUsers {
		sep := ","
		if i == len(demoUsers)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('%s', '%s', '%s', '%s', '%s')%s\n",
			uuid.New().String(), escapeSQL(u.name), u.email, string(hash), u.role, sep)
	}
	out.WriteString("ON CONFLICT (email) DO NOTHING;\n\n")

	// 2. Tarifas base por ruta
	out.WriteString("-- 2. Tarifas base (por kg)\n")
	out.WriteString("INSERT INTO rates (origin, destination, base_rate) VALUES\n")
	for i, r := range demoRates {
		sep := ","
		if i == len(demoRates)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('%s', '%s', %s)%s\n", r.origin, r.destination, r.baseRate, sep)
	}
	out.WriteString("ON CONFLICT (origin, destination) DO UPDATE SET base_rate = EXCLUDED.base_rate;\n\n")

	// 3. Reglas de margen: por unidad y la general de respaldo
	out.WriteString("-- 3. Márgenes\n")
	out.WriteString(`INSERT INTO margin_rules (criterion, match_value, percentage) VALUES
  ('unidad', 'Camioneta', 18),
  ('unidad', 'Camión 3.5t', 16),
  ('unidad', 'Tráiler', 15),
  ('unidad', 'Caja Seca', 14),
  ('unidad', 'Caja Refrigerada', 20),
  ('cliente', 'ACME Industrial', 12),
  ('general', 'General', 12)
ON CONFLICT (criterion, match_value) DO UPDATE SET percentage = EXCLUDED.percentage;

`)

	// 4. Rangos de peso [min, max)
	out.WriteString("-- 4. Rangos de peso\n")
	out.WriteString(`INSERT INTO weight_margins (min_kg, max_kg, percentage) VALUES
  (0, 500, 10),
  (500, 1000, 8),
  (1000, 5000, 6),
  (5000, 25000, 4)
ON CONFLICT (min_kg, max_kg) DO UPDATE SET percentage = EXCLUDED.percentage;

`)

	// 5. Rutas de proveedor para el abanico de ofertas automáticas
	out.WriteString("-- 5. Rutas de proveedor\n")
	out.WriteString("INSERT INTO provider_routes (id, provider, origin, destination, unit_type, price_factor) VALUES\n")
	routes := []struct {
		provider, origin, destination, unit, factor string
	}{
		{"Transportes Norte", "Monterrey", "CDMX", "Tráiler", "0.80"},
		{"Transportes Norte", "Monterrey", "Guadalajara", "Tráiler", "0.82"},
		{"Fletes Bajío", "Guadalajara", "CDMX", "Camión 3.5t", "0.85"},
	}
	for i, r := range routes {
		sep := ","
		if i == len(routes)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('%s', '%s', '%s', '%s', '%s', %s)%s\n",
			uuid.New().String(), r.provider, r.origin, r.destination, r.unit, r.factor, sep)
	}
	out.WriteString("ON CONFLICT (provider, origin, destination, unit_type) DO NOTHING;\n")

	fmt.Printf("Generado %s: %d usuarios, %d tarifas\n", outPath, len(demoUsers), len(demoRates))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
