// seed genera el script SQL para poblar el tarifario (categorías, niveles y
// elementos) a partir de la planilla CSV oficial con columnas:
// trabajo, nivel, detalle, unidad, valor.
//
// Uso: go run ./cmd/seed [-latin1] [ruta/aranceles.csv]
// Por defecto busca aranceles.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/003_seed_tarifario.sql
//
// Se ejecuta como operación administrativa única, fuera de la ventana de
// servicio; el API solo lee estas tablas.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type fila struct {
	trabajo string
	nivel   string
	detalle string
	unidad  string
	valor   decimal.Decimal
}

func main() {
	latin1 := flag.Bool("latin1", false, "la planilla está en ISO-8859-1 (export de Excel antiguo)")
	flag.Parse()

	csvPath := "aranceles.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var r io.Reader = f
	if *latin1 {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}

	filas, err := leerFilas(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(filas) == 0 {
		fmt.Fprintln(os.Stderr, "La planilla no tiene filas de datos")
		os.Exit(1)
	}

	sql := generarSQL(filas)

	outPath := filepath.Join("internal", "infrastructure", "postgres", "migrations", "003_seed_tarifario.sql")
	if err := os.WriteFile(outPath, []byte(sql), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s (%d elementos)\n", outPath, len(filas))
}

// leerFilas parsea la planilla. La cabecera define el orden de las columnas.
func leerFilas(r io.Reader) ([]fila, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	cabecera, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("cabecera: %w", err)
	}
	col := make(map[string]int, len(cabecera))
	for i, nombre := range cabecera {
		col[strings.ToLower(strings.TrimSpace(nombre))] = i
	}
	for _, requerida := range []string{"trabajo", "nivel", "detalle", "unidad", "valor"} {
		if _, ok := col[requerida]; !ok {
			return nil, fmt.Errorf("falta la columna %q", requerida)
		}
	}

	var filas []fila
	for linea := 2; ; linea++ {
		registro, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", linea, err)
		}
		valor, err := decimal.NewFromString(strings.TrimSpace(registro[col["valor"]]))
		if err != nil {
			return nil, fmt.Errorf("línea %d: valor inválido: %w", linea, err)
		}
		filas = append(filas, fila{
			trabajo: strings.TrimSpace(registro[col["trabajo"]]),
			nivel:   strings.TrimSpace(registro[col["nivel"]]),
			detalle: strings.TrimSpace(registro[col["detalle"]]),
			unidad:  strings.TrimSpace(registro[col["unidad"]]),
			valor:   valor,
		})
	}
	return filas, nil
}

// generarSQL emite inserts idempotentes: categorías y niveles con
// ON CONFLICT DO NOTHING, elementos resueltos por join para no depender de
// los UUID generados en esta corrida.
func generarSQL(filas []fila) string {
	var b strings.Builder
	b.WriteString("-- Generado por cmd/seed. No editar a mano.\n")
	b.WriteString("BEGIN;\n\n")

	vistasCategorias := make(map[string]bool)
	vistasNiveles := make(map[string]bool)

	for _, f := range filas {
		if !vistasCategorias[f.trabajo] {
			vistasCategorias[f.trabajo] = true
			fmt.Fprintf(&b,
				"INSERT INTO categorias (id, nombre) VALUES ('%s', '%s') ON CONFLICT (nombre) DO NOTHING;\n",
				uuid.New(), escapar(f.trabajo))
		}
		claveNivel := f.trabajo + "\x00" + f.nivel
		if !vistasNiveles[claveNivel] {
			vistasNiveles[claveNivel] = true
			fmt.Fprintf(&b,
				"INSERT INTO niveles (id, categoria_id, nombre)\n"+
					"SELECT '%s', c.id, '%s' FROM categorias c WHERE c.nombre = '%s'\n"+
					"ON CONFLICT (categoria_id, nombre) DO NOTHING;\n",
				uuid.New(), escapar(f.nivel), escapar(f.trabajo))
		}
		fmt.Fprintf(&b,
			"INSERT INTO elementos (id, nivel_id, detalle, unidad, valor)\n"+
				"SELECT '%s', n.id, '%s', '%s', %s\n"+
				"FROM niveles n JOIN categorias c ON c.id = n.categoria_id\n"+
				"WHERE c.nombre = '%s' AND n.nombre = '%s';\n",
			uuid.New(), escapar(f.detalle), escapar(f.unidad), f.valor.String(),
			escapar(f.trabajo), escapar(f.nivel))
	}

	b.WriteString("\nCOMMIT;\n")
	return b.String()
}

func escapar(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
