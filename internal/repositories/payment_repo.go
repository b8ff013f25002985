package repositories

import (
	"database/sql"

	intconfig "fleetops/internal/config"
	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
)

type PaymentRepository struct {
	DB *sql.DB
}

func (r PaymentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Create stores a transporter payment with its subtrip associations and
// repayment entries. Derived totals are never persisted; summaries are
// recomputed on read.
func (r PaymentRepository) Create(p models.TransporterPayment) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO transporter_payments (payment_no, transporter_id, status, period_start, period_end)
		VALUES (?,?,?,?,?)
	`, p.PaymentNo, p.TransporterID, string(p.Status),
		nullIfEmpty(p.PeriodStart), nullIfEmpty(p.PeriodEnd))
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, s := range p.AssociatedSubtrips {
		if _, err := r.db().Exec(`
			INSERT INTO payment_subtrips (payment_id, subtrip_id) VALUES (?,?)
		`, id, s.ID); err != nil {
			return id, err
		}
	}
	for _, rep := range p.Repayments {
		if _, err := r.db().Exec(`
			INSERT INTO payment_repayments (payment_id, label, amount, date) VALUES (?,?,?,?)
		`, id, rep.Label, rep.Amount, nullIfEmpty(rep.Date)); err != nil {
			return id, err
		}
	}
	return id, nil
}

// GetByID loads a payment with its transporter, associated subtrips
// (expenses included) and repayments.
func (r PaymentRepository) GetByID(id int64) (models.TransporterPayment, error) {
	var p models.TransporterPayment
	var status string
	err := r.db().QueryRow(`
		SELECT id, COALESCE(payment_no,''), COALESCE(transporter_id,0), COALESCE(status,''),
		       COALESCE(DATE_FORMAT(period_start,'%Y-%m-%d'),''), COALESCE(DATE_FORMAT(period_end,'%Y-%m-%d'),'')
		FROM transporter_payments WHERE id=?
	`, id).Scan(&p.ID, &p.PaymentNo, &p.TransporterID, &status, &p.PeriodStart, &p.PeriodEnd)
	if err == sql.ErrNoRows {
		return p, domain.NotFoundError{Resource: "transporter payment"}
	}
	if err != nil {
		return p, err
	}
	p.Status = domain.Status(status)

	if p.TransporterID > 0 {
		t, err := r.loadTransporter(p.TransporterID)
		if err == nil {
			p.Transporter = &t
		} else if !domain.IsNotFound(err) {
			return p, err
		}
	}

	subtripIDs, err := r.listSubtripIDs(id)
	if err != nil {
		return p, err
	}
	subRepo := SubtripRepository{DB: r.DB}
	for _, sid := range subtripIDs {
		s, err := subRepo.GetByID(sid)
		if err != nil {
			if domain.IsNotFound(err) {
				continue
			}
			return p, err
		}
		p.AssociatedSubtrips = append(p.AssociatedSubtrips, s)
	}

	p.Repayments, err = r.listRepayments(id)
	return p, err
}

func (r PaymentRepository) List(transporterID int64, status string) ([]models.TransporterPayment, error) {
	where := "1=1"
	args := []any{}
	if transporterID > 0 {
		where += " AND transporter_id=?"
		args = append(args, transporterID)
	}
	if status != "" {
		where += " AND status=?"
		args = append(args, status)
	}

	rows, err := r.db().Query(`
		SELECT id, COALESCE(payment_no,''), COALESCE(transporter_id,0), COALESCE(status,''),
		       COALESCE(DATE_FORMAT(period_start,'%Y-%m-%d'),''), COALESCE(DATE_FORMAT(period_end,'%Y-%m-%d'),'')
		FROM transporter_payments WHERE `+where+` ORDER BY id DESC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TransporterPayment{}
	for rows.Next() {
		var p models.TransporterPayment
		var st string
		if err := rows.Scan(&p.ID, &p.PaymentNo, &p.TransporterID, &st, &p.PeriodStart, &p.PeriodEnd); err != nil {
			return out, err
		}
		p.Status = domain.Status(st)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PaymentRepository) UpdateStatus(id int64, status domain.Status) error {
	res, err := r.db().Exec(`UPDATE transporter_payments SET status=? WHERE id=?`, string(status), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "transporter payment"}
	}
	return nil
}

func (r PaymentRepository) Delete(id int64) error {
	for _, q := range []string{
		`DELETE FROM payment_subtrips WHERE payment_id=?`,
		`DELETE FROM payment_repayments WHERE payment_id=?`,
	} {
		if _, err := r.db().Exec(q, id); err != nil {
			return err
		}
	}
	res, err := r.db().Exec(`DELETE FROM transporter_payments WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "transporter payment"}
	}
	return nil
}

func (r PaymentRepository) listSubtripIDs(paymentID int64) ([]int64, error) {
	rows, err := r.db().Query(`SELECT subtrip_id FROM payment_subtrips WHERE payment_id=? ORDER BY id ASC`, paymentID)
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

func (r PaymentRepository) listRepayments(paymentID int64) ([]models.Repayment, error) {
	rows, err := r.db().Query(`
		SELECT COALESCE(label,''), COALESCE(amount,0), COALESCE(DATE_FORMAT(date,'%Y-%m-%d'),'')
		FROM payment_repayments WHERE payment_id=? ORDER BY id ASC
	`, paymentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Repayment{}
	for rows.Next() {
		var rep models.Repayment
		if err := rows.Scan(&rep.Label, &rep.Amount, &rep.Date); err != nil {
			return out, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func (r PaymentRepository) loadTransporter(id int64) (models.Transporter, error) {
	var t models.Transporter
	err := r.db().QueryRow(`
		SELECT id, COALESCE(name,''), COALESCE(address,''), COALESCE(phone,''),
		       COALESCE(pan,''), COALESCE(gst_no,''), COALESCE(bank_name,''),
		       COALESCE(account_no,''), COALESCE(ifsc,''), COALESCE(tds_percentage,0)
		FROM transporters WHERE id=?
	`, id).Scan(&t.ID, &t.Name, &t.Address, &t.Phone, &t.PAN, &t.GSTNo,
		&t.BankName, &t.AccountNo, &t.IFSC, &t.TDSPercentage)
	if err == sql.ErrNoRows {
		return t, domain.NotFoundError{Resource: "transporter"}
	}
	return t, err
}
