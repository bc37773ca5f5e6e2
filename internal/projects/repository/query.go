package repository

// selectProjects is the single read shape shared by List and Get. Detail
// columns are aliased so the three breakdown tables do not collide.
const selectProjects = `
SELECT
  p.pjCd, p.pjName, p.buCd, bu.buName, p.year, p.planSecCd, ps.planSecName,
  p.constTypeCd, ct.constTypeName, p.regionCd, r.regionName, p.customerCd, c.customerName,
  p.abbreviation, p.orderName, p.startDate, p.totalMM, p.totalConst,
  ur.inhouse AS inhouseUtilizationRate, ur.outsourced AS outsourcedUtilizationRate, ur.external AS externalUtilizationRate,
  wh.inhouse AS inhouseWorkHours, wh.outsourced AS outsourcedWorkHours, wh.external AS externalWorkHours,
  pd.calculationBasis, pd.changeReason, pd.remarks
FROM projects p
LEFT JOIN business_units bu ON p.buCd = bu.buCd
LEFT JOIN plan_sections ps ON p.planSecCd = ps.planSecCd
LEFT JOIN construction_types ct ON p.constTypeCd = ct.constTypeCd
LEFT JOIN regions r ON p.regionCd = r.regionCd
LEFT JOIN customers c ON p.customerCd = c.customerCd
LEFT JOIN utilization_rates ur ON p.pjCd = ur.pjCd
LEFT JOIN work_hours wh ON p.pjCd = wh.pjCd
LEFT JOIN project_details pd ON p.pjCd = pd.pjCd
`

// projectQuery appends an optional WHERE clause and a stable ordering.
func projectQuery(where string) string {
	q := selectProjects
	if where != "" {
		q += "WHERE " + where + "\n"
	}
	return q + "ORDER BY p.pjCd;"
}

const insertProject = `
INSERT INTO projects (pjCd, pjName, buCd, year, planSecCd, constTypeCd, regionCd, customerCd, startDate, totalMM, totalConst)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

const updateProject = `
UPDATE projects
SET pjName = COALESCE($1, pjName), buCd = COALESCE($2, buCd), year = COALESCE($3, year)
WHERE pjCd = $4;
`
