package domain

// Breakdown splits a figure across the three sourcing categories.
// Absent values are reported as 0, never null.
type Breakdown struct {
	Inhouse    float64 `json:"inhouse"`
	Outsourced float64 `json:"outsourced"`
	External   float64 `json:"external"`
}

// Project is the joined view of a projects row, its lookup names and its
// optional detail rows. Lookup names and detail fields are read-only here.
type Project struct {
	PjCd             string    `json:"pjCd"`
	BuCd             string    `json:"buCd"`
	BuName           string    `json:"buName"`
	Year             int       `json:"year"`
	PlanSecCd        string    `json:"planSecCd"`
	PlanSecName      string    `json:"planSecName"`
	ConstTypeCd      string    `json:"constTypeCd"`
	ConstTypeName    string    `json:"constTypeName"`
	RegionCd         string    `json:"regionCd"`
	RegionName       string    `json:"regionName"`
	PjName           string    `json:"pjName"`
	CustomerCd       string    `json:"customerCd"`
	CustomerName     string    `json:"customerName"`
	Abbreviation     string    `json:"abbreviation"`
	Order            string    `json:"order"`
	StartDate        string    `json:"startDate"` // YYYY-MM
	TotalMM          float64   `json:"totalMM"`
	TotalConst       float64   `json:"totalConst"`
	UtilizationRate  Breakdown `json:"utilizationRate"`
	WorkHours        Breakdown `json:"workHours"`
	CalculationBasis string    `json:"calculationBasis"`
	ChangeReason     string    `json:"changeReason"`
	Remarks          string    `json:"remarks"`
}

// CreateInput carries the eleven columns written by a create. Nil fields
// are written as NULL so the table's own constraints decide. StartDate is
// passed through as sent and parsed by the database.
type CreateInput struct {
	PjCd        *string
	PjName      *string
	BuCd        *string
	Year        *int
	PlanSecCd   *string
	ConstTypeCd *string
	RegionCd    *string
	CustomerCd  *string
	StartDate   *string
	TotalMM     *float64
	TotalConst  *float64
}

// UpdateInput is the whole writable surface of an update. Nil fields keep
// their stored value.
type UpdateInput struct {
	PjName *string
	BuCd   *string
	Year   *int
}
