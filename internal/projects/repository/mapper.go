package repository

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pjmaster/project-api/internal/projects/domain"
	"github.com/pjmaster/project-api/internal/storage/postgres"
)

// MapRow turns one row of the project join into a Project. Missing detail
// rows surface as NULLs and map to 0 or "".
func MapRow(row postgres.Row) (domain.Project, error) {
	r := rowReader{row: row}

	p := domain.Project{
		PjCd:          r.str("pjcd"),
		BuCd:          r.str("bucd"),
		BuName:        r.str("buname"),
		Year:          r.int("year"),
		PlanSecCd:     r.str("planseccd"),
		PlanSecName:   r.str("plansecname"),
		ConstTypeCd:   r.str("consttypecd"),
		ConstTypeName: r.str("consttypename"),
		RegionCd:      r.str("regioncd"),
		RegionName:    r.str("regionname"),
		PjName:        r.str("pjname"),
		CustomerCd:    r.str("customercd"),
		CustomerName:  r.str("customername"),
		Abbreviation:  r.str("abbreviation"),
		Order:         r.str("ordername"),
		StartDate:     r.month("startdate"),
		TotalMM:       r.float("totalmm"),
		TotalConst:    r.float("totalconst"),
		UtilizationRate: domain.Breakdown{
			Inhouse:    r.float("inhouseutilizationrate"),
			Outsourced: r.float("outsourcedutilizationrate"),
			External:   r.float("externalutilizationrate"),
		},
		WorkHours: domain.Breakdown{
			Inhouse:    r.float("inhouseworkhours"),
			Outsourced: r.float("outsourcedworkhours"),
			External:   r.float("externalworkhours"),
		},
		CalculationBasis: r.str("calculationbasis"),
		ChangeReason:     r.str("changereason"),
		Remarks:          r.str("remarks"),
	}

	if r.err != nil {
		return domain.Project{}, r.err
	}
	return p, nil
}

// rowReader keeps the first conversion error so MapRow reads as a plain
// field list.
type rowReader struct {
	row postgres.Row
	err error
}

func (r *rowReader) fail(col string, v any) {
	if r.err == nil {
		r.err = fmt.Errorf("map column %s: unsupported value %T", col, v)
	}
}

func (r *rowReader) str(col string) string {
	switch v := r.row[col].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		r.fail(col, v)
		return ""
	}
}

func (r *rowReader) float(col string) float64 {
	switch v := r.row[col].(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	case int16:
		return float64(v)
	case int:
		return float64(v)
	case pgtype.Numeric:
		if !v.Valid {
			return 0
		}
		f, err := v.Float64Value()
		if err != nil || !f.Valid {
			r.fail(col, v)
			return 0
		}
		return f.Float64
	case []byte:
		return r.parseFloat(col, string(v))
	case string:
		return r.parseFloat(col, v)
	default:
		r.fail(col, v)
		return 0
	}
}

func (r *rowReader) parseFloat(col, s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		r.fail(col, s)
		return 0
	}
	return f
}

func (r *rowReader) int(col string) int {
	switch v := r.row[col].(type) {
	case int64:
		return int(v)
	case int32:
		return int(v)
	case int16:
		return int(v)
	case int:
		return v
	}
	f := r.float(col)
	if f != math.Trunc(f) {
		r.fail(col, f)
		return 0
	}
	return int(f)
}

func (r *rowReader) month(col string) string {
	switch v := r.row[col].(type) {
	case nil:
		return ""
	case time.Time:
		return domain.FormatMonth(v)
	case pgtype.Timestamptz:
		if !v.Valid {
			return ""
		}
		return domain.FormatMonth(v.Time)
	case pgtype.Timestamp:
		if !v.Valid {
			return ""
		}
		return domain.FormatMonth(v.Time)
	case string, []byte:
		t, err := domain.ParseStartDate(r.str(col))
		if err != nil {
			r.fail(col, v)
			return ""
		}
		return domain.FormatMonth(t)
	default:
		r.fail(col, v)
		return ""
	}
}
