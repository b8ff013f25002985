package repositories

import (
	"database/sql"

	intconfig "fleetops/internal/config"
	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
)

type PayrollRepository struct {
	DB *sql.DB
}

func (r PayrollRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Create stores a payroll submission with its subtrip associations and the
// ad-hoc payment/deduction lines the user entered in the draft.
func (r PayrollRepository) Create(p models.DriverPayroll) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO driver_payrolls (payroll_no, driver_id, status, period_start, period_end)
		VALUES (?,?,?,?,?)
	`, p.PayrollNo, p.DriverID, string(p.Status),
		nullIfEmpty(p.PeriodStart), nullIfEmpty(p.PeriodEnd))
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, s := range p.Subtrips {
		if _, err := r.db().Exec(`
			INSERT INTO payroll_subtrips (payroll_id, subtrip_id) VALUES (?,?)
		`, id, s.ID); err != nil {
			return id, err
		}
	}
	if err := r.insertAdjustments(id, "payment", p.AdditionalPayments); err != nil {
		return id, err
	}
	if err := r.insertAdjustments(id, "deduction", p.AdditionalDeductions); err != nil {
		return id, err
	}
	return id, nil
}

// GetByID loads a payroll with its driver, subtrips and adjustment lines.
func (r PayrollRepository) GetByID(id int64) (models.DriverPayroll, error) {
	var p models.DriverPayroll
	var status string
	err := r.db().QueryRow(`
		SELECT id, COALESCE(payroll_no,''), COALESCE(driver_id,0), COALESCE(status,''),
		       COALESCE(DATE_FORMAT(period_start,'%Y-%m-%d'),''), COALESCE(DATE_FORMAT(period_end,'%Y-%m-%d'),'')
		FROM driver_payrolls WHERE id=?
	`, id).Scan(&p.ID, &p.PayrollNo, &p.DriverID, &status, &p.PeriodStart, &p.PeriodEnd)
	if err == sql.ErrNoRows {
		return p, domain.NotFoundError{Resource: "payroll"}
	}
	if err != nil {
		return p, err
	}
	p.Status = domain.Status(status)

	if p.DriverID > 0 {
		d, err := r.loadDriver(p.DriverID)
		if err == nil {
			p.Driver = &d
		} else if !domain.IsNotFound(err) {
			return p, err
		}
	}

	subRepo := SubtripRepository{DB: r.DB}
	ids, err := r.listSubtripIDs(id)
	if err != nil {
		return p, err
	}
	for _, sid := range ids {
		s, err := subRepo.GetByID(sid)
		if err != nil {
			if domain.IsNotFound(err) {
				continue
			}
			return p, err
		}
		p.Subtrips = append(p.Subtrips, s)
	}

	if p.AdditionalPayments, err = r.listAdjustments(id, "payment"); err != nil {
		return p, err
	}
	p.AdditionalDeductions, err = r.listAdjustments(id, "deduction")
	return p, err
}

func (r PayrollRepository) List(driverID int64, status string) ([]models.DriverPayroll, error) {
	where := "1=1"
	args := []any{}
	if driverID > 0 {
		where += " AND driver_id=?"
		args = append(args, driverID)
	}
	if status != "" {
		where += " AND status=?"
		args = append(args, status)
	}

	rows, err := r.db().Query(`
		SELECT id, COALESCE(payroll_no,''), COALESCE(driver_id,0), COALESCE(status,''),
		       COALESCE(DATE_FORMAT(period_start,'%Y-%m-%d'),''), COALESCE(DATE_FORMAT(period_end,'%Y-%m-%d'),'')
		FROM driver_payrolls WHERE `+where+` ORDER BY id DESC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.DriverPayroll{}
	for rows.Next() {
		var p models.DriverPayroll
		var st string
		if err := rows.Scan(&p.ID, &p.PayrollNo, &p.DriverID, &st, &p.PeriodStart, &p.PeriodEnd); err != nil {
			return out, err
		}
		p.Status = domain.Status(st)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PayrollRepository) Delete(id int64) error {
	for _, q := range []string{
		`DELETE FROM payroll_subtrips WHERE payroll_id=?`,
		`DELETE FROM payroll_adjustments WHERE payroll_id=?`,
	} {
		if _, err := r.db().Exec(q, id); err != nil {
			return err
		}
	}
	res, err := r.db().Exec(`DELETE FROM driver_payrolls WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "payroll"}
	}
	return nil
}

func (r PayrollRepository) insertAdjustments(payrollID int64, kind string, adj []models.Adjustment) error {
	for _, a := range adj {
		if _, err := r.db().Exec(`
			INSERT INTO payroll_adjustments (payroll_id, kind, label, amount) VALUES (?,?,?,?)
		`, payrollID, kind, a.Label, a.Amount); err != nil {
			return err
		}
	}
	return nil
}

func (r PayrollRepository) listAdjustments(payrollID int64, kind string) ([]models.Adjustment, error) {
	rows, err := r.db().Query(`
		SELECT COALESCE(label,''), COALESCE(amount,0)
		FROM payroll_adjustments WHERE payroll_id=? AND kind=? ORDER BY id ASC
	`, payrollID, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Adjustment{}
	for rows.Next() {
		var a models.Adjustment
		if err := rows.Scan(&a.Label, &a.Amount); err != nil {
			return out, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r PayrollRepository) listSubtripIDs(payrollID int64) ([]int64, error) {
	rows, err := r.db().Query(`SELECT subtrip_id FROM payroll_subtrips WHERE payroll_id=? ORDER BY id ASC`, payrollID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return out, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r PayrollRepository) loadDriver(id int64) (models.Driver, error) {
	var d models.Driver
	err := r.db().QueryRow(`
		SELECT id, COALESCE(name,''), COALESCE(phone,''), COALESCE(license_no,''),
		       COALESCE(bank_name,''), COALESCE(account_no,''), COALESCE(ifsc,''),
		       COALESCE(vehicle_no,''), COALESCE(status,'')
		FROM drivers WHERE id=?
	`, id).Scan(&d.ID, &d.Name, &d.Phone, &d.LicenseNo,
		&d.BankName, &d.AccountNo, &d.IFSC, &d.VehicleNo, &d.Status)
	if err == sql.ErrNoRows {
		return d, domain.NotFoundError{Resource: "driver"}
	}
	return d, err
}
