package repositories

import (
	"database/sql"
	"strings"

	intconfig "fleetops/internal/config"
	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
)

type SubtripRepository struct {
	DB *sql.DB
}

func (r SubtripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// SubtripFilter narrows subtrip listings. Zero values mean "no filter".
type SubtripFilter struct {
	DriverID      int64
	TransporterID int64
	CustomerID    int64
	VehicleID     int64
	Status        string
	StartDate     string
	EndDate       string
}

const subtripColumns = `
	st.id, st.trip_id, COALESCE(st.route_code,''), COALESCE(st.customer_id,0),
	COALESCE(st.status,''), COALESCE(st.loading_point,''), COALESCE(st.unloading_point,''),
	COALESCE(st.material,''), COALESCE(st.eway_bill,''),
	COALESCE(st.loading_weight,0), COALESCE(st.unloading_weight,0), COALESCE(st.rate,0),
	COALESCE(st.start_km,0), COALESCE(st.end_km,0),
	COALESCE(st.shortage_weight,0), COALESCE(st.shortage_amount,0),
	COALESCE(st.commission_rate,0),
	COALESCE(DATE_FORMAT(st.start_date,'%Y-%m-%d'),''), COALESCE(DATE_FORMAT(st.end_date,'%Y-%m-%d'),'')`

func scanSubtrip(scan func(dest ...any) error) (models.Subtrip, error) {
	var s models.Subtrip
	var status string
	err := scan(
		&s.ID, &s.TripID, &s.RouteCode, &s.CustomerID,
		&status, &s.LoadingPoint, &s.UnloadingPoint,
		&s.Material, &s.EwayBill,
		&s.LoadingWeight, &s.UnloadingWeight, &s.Rate,
		&s.StartKm, &s.EndKm,
		&s.ShortageWeight, &s.ShortageAmount,
		&s.CommissionRate,
		&s.StartDate, &s.EndDate,
	)
	s.Status = domain.Status(status)
	return s, err
}

// GetByID loads a subtrip with its expenses and, when present, the trip,
// vehicle and route documents the insight generator needs.
func (r SubtripRepository) GetByID(id int64) (models.Subtrip, error) {
	db := r.db()

	row := db.QueryRow(`SELECT `+subtripColumns+` FROM subtrips st WHERE st.id=?`, id)
	s, err := scanSubtrip(row.Scan)
	if err == sql.ErrNoRows {
		return s, domain.NotFoundError{Resource: "subtrip"}
	}
	if err != nil {
		return s, err
	}

	if s.Expenses, err = r.ListExpenses(id); err != nil {
		return s, err
	}

	trip, err := r.loadTrip(s.TripID)
	if err == nil {
		s.Trip = &trip
	} else if !domain.IsNotFound(err) {
		return s, err
	}

	if strings.TrimSpace(s.RouteCode) != "" {
		route, err := RouteRepository{DB: r.DB}.GetByCode(s.RouteCode)
		if err == nil {
			s.Route = &route
		} else if !domain.IsNotFound(err) {
			return s, err
		}
	}

	return s, nil
}

// List returns filtered subtrips with their expenses attached.
func (r SubtripRepository) List(f SubtripFilter) ([]models.Subtrip, error) {
	db := r.db()

	where := []string{"1=1"}
	args := []any{}
	if f.DriverID > 0 {
		where = append(where, "t.driver_id=?")
		args = append(args, f.DriverID)
	}
	if f.TransporterID > 0 {
		where = append(where, "v.transporter_id=?")
		args = append(args, f.TransporterID)
	}
	if f.CustomerID > 0 {
		where = append(where, "st.customer_id=?")
		args = append(args, f.CustomerID)
	}
	if f.VehicleID > 0 {
		where = append(where, "t.vehicle_id=?")
		args = append(args, f.VehicleID)
	}
	if strings.TrimSpace(f.Status) != "" {
		where = append(where, "st.status=?")
		args = append(args, strings.TrimSpace(f.Status))
	}
	if strings.TrimSpace(f.StartDate) != "" {
		where = append(where, "st.start_date>=?")
		args = append(args, strings.TrimSpace(f.StartDate))
	}
	if strings.TrimSpace(f.EndDate) != "" {
		where = append(where, "st.start_date<=?")
		args = append(args, strings.TrimSpace(f.EndDate))
	}

	query := `SELECT ` + subtripColumns + `
		FROM subtrips st
		JOIN trips t ON t.id=st.trip_id
		LEFT JOIN vehicles v ON v.id=t.vehicle_id
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY st.start_date ASC, st.id ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Subtrip{}
	for rows.Next() {
		s, err := scanSubtrip(rows.Scan)
		if err != nil {
			return out, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return out, err
	}

	for i := range out {
		exp, err := r.ListExpenses(out[i].ID)
		if err != nil {
			return out, err
		}
		out[i].Expenses = exp
	}
	return out, nil
}

// ListExpenses returns a subtrip's expenses in entry order.
func (r SubtripRepository) ListExpenses(subtripID int64) ([]models.Expense, error) {
	rows, err := r.db().Query(`
		SELECT id, subtrip_id, COALESCE(expense_type,''), COALESCE(amount,0),
		       COALESCE(diesel_ltr,0), COALESCE(paid_by,''),
		       COALESCE(DATE_FORMAT(date,'%Y-%m-%d'),''), COALESCE(remarks,'')
		FROM subtrip_expenses
		WHERE subtrip_id=?
		ORDER BY id ASC
	`, subtripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.SubtripID, &e.ExpenseType, &e.Amount,
			&e.DieselLtr, &e.PaidBy, &e.Date, &e.Remarks); err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r SubtripRepository) Create(s models.Subtrip) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO subtrips
		  (trip_id, route_code, customer_id, status, loading_point, unloading_point,
		   material, eway_bill, loading_weight, unloading_weight, rate,
		   start_km, end_km, shortage_weight, shortage_amount, commission_rate,
		   start_date, end_date)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`, s.TripID, s.RouteCode, s.CustomerID, string(s.Status), s.LoadingPoint, s.UnloadingPoint,
		s.Material, s.EwayBill, s.LoadingWeight, s.UnloadingWeight, s.Rate,
		s.StartKm, s.EndKm, s.ShortageWeight, s.ShortageAmount, s.CommissionRate,
		nullIfEmpty(s.StartDate), nullIfEmpty(s.EndDate))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r SubtripRepository) Update(s models.Subtrip) error {
	res, err := r.db().Exec(`
		UPDATE subtrips SET
		  route_code=?, customer_id=?, status=?, loading_point=?, unloading_point=?,
		  material=?, eway_bill=?, loading_weight=?, unloading_weight=?, rate=?,
		  start_km=?, end_km=?, shortage_weight=?, shortage_amount=?, commission_rate=?,
		  start_date=?, end_date=?
		WHERE id=?
	`, s.RouteCode, s.CustomerID, string(s.Status), s.LoadingPoint, s.UnloadingPoint,
		s.Material, s.EwayBill, s.LoadingWeight, s.UnloadingWeight, s.Rate,
		s.StartKm, s.EndKm, s.ShortageWeight, s.ShortageAmount, s.CommissionRate,
		nullIfEmpty(s.StartDate), nullIfEmpty(s.EndDate), s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "subtrip"}
	}
	return nil
}

func (r SubtripRepository) UpdateStatus(id int64, status domain.Status) error {
	res, err := r.db().Exec(`UPDATE subtrips SET status=? WHERE id=?`, string(status), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "subtrip"}
	}
	return nil
}

func (r SubtripRepository) Delete(id int64) error {
	if _, err := r.db().Exec(`DELETE FROM subtrip_expenses WHERE subtrip_id=?`, id); err != nil {
		return err
	}
	res, err := r.db().Exec(`DELETE FROM subtrips WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "subtrip"}
	}
	return nil
}

func (r SubtripRepository) AddExpense(e models.Expense) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO subtrip_expenses (subtrip_id, expense_type, amount, diesel_ltr, paid_by, date, remarks)
		VALUES (?,?,?,?,?,?,?)
	`, e.SubtripID, e.ExpenseType, e.Amount, e.DieselLtr, e.PaidBy, nullIfEmpty(e.Date), e.Remarks)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r SubtripRepository) DeleteExpense(id int64) error {
	res, err := r.db().Exec(`DELETE FROM subtrip_expenses WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "expense"}
	}
	return nil
}

func (r SubtripRepository) loadTrip(tripID int64) (models.Trip, error) {
	var t models.Trip
	var vehicleID sql.NullInt64
	err := r.db().QueryRow(`
		SELECT id, COALESCE(driver_id,0), vehicle_id,
		       COALESCE(DATE_FORMAT(from_date,'%Y-%m-%d'),''), COALESCE(DATE_FORMAT(to_date,'%Y-%m-%d'),'')
		FROM trips WHERE id=?
	`, tripID).Scan(&t.ID, &t.DriverID, &vehicleID, &t.FromDate, &t.ToDate)
	if err == sql.ErrNoRows {
		return t, domain.NotFoundError{Resource: "trip"}
	}
	if err != nil {
		return t, err
	}

	if vehicleID.Valid {
		var v models.Vehicle
		var capacity sql.NullInt64
		err := r.db().QueryRow(`
			SELECT id, COALESCE(vehicle_no,''), COALESCE(vehicle_type,''), capacity,
			       COALESCE(transporter_id,0), COALESCE(is_own,0), COALESCE(model_type,'')
			FROM vehicles WHERE id=?
		`, vehicleID.Int64).Scan(&v.ID, &v.VehicleNo, &v.VehicleType, &capacity,
			&v.TransporterID, &v.IsOwn, &v.ModelType)
		if err == nil {
			if capacity.Valid {
				cap := int(capacity.Int64)
				v.Capacity = &cap
			}
			t.Vehicle = &v
		} else if err != sql.ErrNoRows {
			return t, err
		}
	}
	return t, nil
}

// nullIfEmpty stores optional strings as NULL without wiping existing data.
func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
