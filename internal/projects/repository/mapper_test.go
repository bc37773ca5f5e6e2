package repository

import (
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pjmaster/project-api/internal/projects/domain"
	"github.com/pjmaster/project-api/internal/storage/postgres"
)

func fullRow() postgres.Row {
	return postgres.Row{
		"pjcd":                      "PJ001",
		"pjname":                    "Project 1",
		"bucd":                      "BU001",
		"buname":                    "Civil",
		"year":                      int32(2025),
		"planseccd":                 "PS001",
		"plansecname":               "Plan A",
		"consttypecd":               "CT001",
		"consttypename":             "Bridge",
		"regioncd":                  "R001",
		"regionname":                "Kanto",
		"customercd":                "C001",
		"customername":              "ACME",
		"abbreviation":              "P1",
		"ordername":                 "Order 1",
		"startdate":                 time.Date(2024, 12, 31, 15, 0, 0, 0, time.UTC),
		"totalmm":                   float64(12),
		"totalconst":                float64(1000),
		"inhouseutilizationrate":    0.5,
		"outsourcedutilizationrate": 0.3,
		"externalutilizationrate":   0.2,
		"inhouseworkhours":          int64(120),
		"outsourcedworkhours":       int64(60),
		"externalworkhours":         int64(20),
		"calculationbasis":          "basis",
		"changereason":              "reason",
		"remarks":                   "note",
	}
}

func TestMapRow_FullRow(t *testing.T) {
	p, err := MapRow(fullRow())
	require.NoError(t, err)

	assert.Equal(t, domain.Project{
		PjCd:             "PJ001",
		BuCd:             "BU001",
		BuName:           "Civil",
		Year:             2025,
		PlanSecCd:        "PS001",
		PlanSecName:      "Plan A",
		ConstTypeCd:      "CT001",
		ConstTypeName:    "Bridge",
		RegionCd:         "R001",
		RegionName:       "Kanto",
		PjName:           "Project 1",
		CustomerCd:       "C001",
		CustomerName:     "ACME",
		Abbreviation:     "P1",
		Order:            "Order 1",
		StartDate:        "2024-12",
		TotalMM:          12,
		TotalConst:       1000,
		UtilizationRate:  domain.Breakdown{Inhouse: 0.5, Outsourced: 0.3, External: 0.2},
		WorkHours:        domain.Breakdown{Inhouse: 120, Outsourced: 60, External: 20},
		CalculationBasis: "basis",
		ChangeReason:     "reason",
		Remarks:          "note",
	}, p)
}

func TestMapRow_MissingDetailRowsDefault(t *testing.T) {
	row := fullRow()
	for _, col := range []string{
		"inhouseutilizationrate", "outsourcedutilizationrate", "externalutilizationrate",
		"inhouseworkhours", "outsourcedworkhours", "externalworkhours",
		"calculationbasis", "changereason", "remarks", "buname",
	} {
		row[col] = nil
	}

	p, err := MapRow(row)
	require.NoError(t, err)
	assert.Equal(t, domain.Breakdown{}, p.UtilizationRate)
	assert.Equal(t, domain.Breakdown{}, p.WorkHours)
	assert.Equal(t, "", p.CalculationBasis)
	assert.Equal(t, "", p.ChangeReason)
	assert.Equal(t, "", p.Remarks)
	assert.Equal(t, "", p.BuName)
}

func TestMapRow_StartDateIsUTCMonth(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	row := fullRow()
	row["startdate"] = time.Date(2025, 1, 1, 0, 0, 0, 0, jst)

	p, err := MapRow(row)
	require.NoError(t, err)
	assert.Equal(t, "2024-12", p.StartDate)

	row["startdate"] = []byte("2024-12-31T15:00:00.000Z")
	p, err = MapRow(row)
	require.NoError(t, err)
	assert.Equal(t, "2024-12", p.StartDate)
}

func TestMapRow_DriverValueShapes(t *testing.T) {
	row := fullRow()
	// lib/pq hands numeric and text back as []byte
	row["totalmm"] = []byte("12.5")
	row["totalconst"] = pgtype.Numeric{Int: big.NewInt(100050), Exp: -2, Valid: true}
	row["year"] = []byte("2026")
	row["pjname"] = []byte("Bytes")
	row["inhouseworkhours"] = pgtype.Numeric{Valid: false}

	p, err := MapRow(row)
	require.NoError(t, err)
	assert.Equal(t, 12.5, p.TotalMM)
	assert.Equal(t, 1000.5, p.TotalConst)
	assert.Equal(t, 2026, p.Year)
	assert.Equal(t, "Bytes", p.PjName)
	assert.Zero(t, p.WorkHours.Inhouse)
}

func TestMapRow_UnsupportedValue(t *testing.T) {
	row := fullRow()
	row["totalmm"] = struct{}{}

	_, err := MapRow(row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "totalmm")

	row = fullRow()
	row["year"] = 2025.5
	_, err = MapRow(row)
	require.Error(t, err)
}

func TestProjectQuery(t *testing.T) {
	all := projectQuery("")
	assert.NotContains(t, all, "WHERE")
	assert.Contains(t, all, "ORDER BY p.pjCd")

	one := projectQuery("p.pjCd = $1")
	assert.Contains(t, one, "WHERE p.pjCd = $1\nORDER BY p.pjCd")
	for _, table := range []string{
		"business_units", "plan_sections", "construction_types", "regions",
		"customers", "utilization_rates", "work_hours", "project_details",
	} {
		assert.Contains(t, one, "LEFT JOIN "+table)
	}
}
