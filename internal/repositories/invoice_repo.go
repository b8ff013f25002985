package repositories

import (
	"database/sql"

	intconfig "fleetops/internal/config"
	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
)

type InvoiceRepository struct {
	DB *sql.DB
}

func (r InvoiceRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Create stores an invoice and snapshots the billed subtrips into invoice
// lines, so later subtrip edits cannot change an issued invoice.
func (r InvoiceRepository) Create(inv models.Invoice) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO invoices (invoice_no, customer_id, status, created_date, due_date)
		VALUES (?,?,?,?,?)
	`, inv.InvoiceNo, inv.CustomerID, string(inv.Status),
		nullIfEmpty(inv.CreatedDate), nullIfEmpty(inv.DueDate))
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, s := range inv.InvoicedSubtrips {
		if _, err := r.db().Exec(`
			INSERT INTO invoice_subtrips
			  (invoice_id, subtrip_id, route_code, loading_weight, unloading_weight,
			   rate, shortage_weight, shortage_amount, start_date)
			VALUES (?,?,?,?,?,?,?,?,?)
		`, id, s.ID, s.RouteCode, s.LoadingWeight, s.UnloadingWeight,
			s.Rate, s.ShortageWeight, s.ShortageAmount, nullIfEmpty(s.StartDate)); err != nil {
			return id, err
		}
	}
	return id, nil
}

// GetByID loads an invoice with its customer and line snapshots.
func (r InvoiceRepository) GetByID(id int64) (models.Invoice, error) {
	var inv models.Invoice
	var status string
	err := r.db().QueryRow(`
		SELECT id, COALESCE(invoice_no,''), COALESCE(customer_id,0), COALESCE(status,''),
		       COALESCE(DATE_FORMAT(created_date,'%Y-%m-%d'),''), COALESCE(DATE_FORMAT(due_date,'%Y-%m-%d'),'')
		FROM invoices WHERE id=?
	`, id).Scan(&inv.ID, &inv.InvoiceNo, &inv.CustomerID, &status, &inv.CreatedDate, &inv.DueDate)
	if err == sql.ErrNoRows {
		return inv, domain.NotFoundError{Resource: "invoice"}
	}
	if err != nil {
		return inv, err
	}
	inv.Status = domain.Status(status)

	if inv.CustomerID > 0 {
		var c models.Customer
		err := r.db().QueryRow(`
			SELECT id, COALESCE(name,''), COALESCE(address,''), COALESCE(phone,''),
			       COALESCE(gst_no,''), COALESCE(state,'')
			FROM customers WHERE id=?
		`, inv.CustomerID).Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.GSTNo, &c.State)
		if err == nil {
			inv.Customer = &c
		} else if err != sql.ErrNoRows {
			return inv, err
		}
	}

	rows, err := r.db().Query(`
		SELECT COALESCE(subtrip_id,0), COALESCE(route_code,''), COALESCE(loading_weight,0),
		       COALESCE(unloading_weight,0), COALESCE(rate,0), COALESCE(shortage_weight,0),
		       COALESCE(shortage_amount,0), COALESCE(DATE_FORMAT(start_date,'%Y-%m-%d'),'')
		FROM invoice_subtrips WHERE invoice_id=? ORDER BY id ASC
	`, id)
	if err != nil {
		return inv, err
	}
	defer rows.Close()

	for rows.Next() {
		var s models.Subtrip
		if err := rows.Scan(&s.ID, &s.RouteCode, &s.LoadingWeight, &s.UnloadingWeight,
			&s.Rate, &s.ShortageWeight, &s.ShortageAmount, &s.StartDate); err != nil {
			return inv, err
		}
		inv.InvoicedSubtrips = append(inv.InvoicedSubtrips, s)
	}
	return inv, rows.Err()
}

func (r InvoiceRepository) List(customerID int64, status string) ([]models.Invoice, error) {
	where := "1=1"
	args := []any{}
	if customerID > 0 {
		where += " AND customer_id=?"
		args = append(args, customerID)
	}
	if status != "" {
		where += " AND status=?"
		args = append(args, status)
	}

	rows, err := r.db().Query(`
		SELECT id, COALESCE(invoice_no,''), COALESCE(customer_id,0), COALESCE(status,''),
		       COALESCE(DATE_FORMAT(created_date,'%Y-%m-%d'),''), COALESCE(DATE_FORMAT(due_date,'%Y-%m-%d'),'')
		FROM invoices WHERE `+where+` ORDER BY id DESC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Invoice{}
	for rows.Next() {
		var inv models.Invoice
		var st string
		if err := rows.Scan(&inv.ID, &inv.InvoiceNo, &inv.CustomerID, &st, &inv.CreatedDate, &inv.DueDate); err != nil {
			return out, err
		}
		inv.Status = domain.Status(st)
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r InvoiceRepository) UpdateStatus(id int64, status domain.Status) error {
	res, err := r.db().Exec(`UPDATE invoices SET status=? WHERE id=?`, string(status), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "invoice"}
	}
	return nil
}

func (r InvoiceRepository) Delete(id int64) error {
	if _, err := r.db().Exec(`DELETE FROM invoice_subtrips WHERE invoice_id=?`, id); err != nil {
		return err
	}
	res, err := r.db().Exec(`DELETE FROM invoices WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "invoice"}
	}
	return nil
}
