package repositories

import (
	"database/sql"
	"strings"

	intconfig "fleetops/internal/config"
	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
)

type RouteRepository struct {
	DB *sql.DB
}

func (r RouteRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByCode loads a route with its per-vehicle-type salary expectations.
func (r RouteRepository) GetByCode(code string) (models.Route, error) {
	var route models.Route
	err := r.db().QueryRow(`
		SELECT id, COALESCE(route_code,''), COALESCE(from_place,''), COALESCE(to_place,''),
		       COALESCE(distance,0), COALESCE(toll_amt,0)
		FROM routes WHERE route_code=?
	`, strings.TrimSpace(code)).Scan(&route.ID, &route.RouteCode, &route.FromPlace, &route.ToPlace,
		&route.Distance, &route.TollAmt)
	if err == sql.ErrNoRows {
		return route, domain.NotFoundError{Resource: "route"}
	}
	if err != nil {
		return route, err
	}

	route.Salary, err = r.listSalary(route.ID)
	return route, err
}

func (r RouteRepository) List() ([]models.Route, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(route_code,''), COALESCE(from_place,''), COALESCE(to_place,''),
		       COALESCE(distance,0), COALESCE(toll_amt,0)
		FROM routes ORDER BY route_code ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Route{}
	for rows.Next() {
		var route models.Route
		if err := rows.Scan(&route.ID, &route.RouteCode, &route.FromPlace, &route.ToPlace,
			&route.Distance, &route.TollAmt); err != nil {
			return out, err
		}
		out = append(out, route)
	}
	if err := rows.Err(); err != nil {
		return out, err
	}

	for i := range out {
		sal, err := r.listSalary(out[i].ID)
		if err != nil {
			return out, err
		}
		out[i].Salary = sal
	}
	return out, nil
}

func (r RouteRepository) Create(route models.Route) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO routes (route_code, from_place, to_place, distance, toll_amt)
		VALUES (?,?,?,?,?)
	`, route.RouteCode, route.FromPlace, route.ToPlace, route.Distance, route.TollAmt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err := r.replaceSalary(id, route.Salary); err != nil {
		return id, err
	}
	return id, nil
}

func (r RouteRepository) Update(route models.Route) error {
	res, err := r.db().Exec(`
		UPDATE routes SET route_code=?, from_place=?, to_place=?, distance=?, toll_amt=?
		WHERE id=?
	`, route.RouteCode, route.FromPlace, route.ToPlace, route.Distance, route.TollAmt, route.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "route"}
	}
	return r.replaceSalary(route.ID, route.Salary)
}

func (r RouteRepository) Delete(id int64) error {
	if _, err := r.db().Exec(`DELETE FROM route_salaries WHERE route_id=?`, id); err != nil {
		return err
	}
	res, err := r.db().Exec(`DELETE FROM routes WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "route"}
	}
	return nil
}

func (r RouteRepository) listSalary(routeID int64) ([]models.RouteSalary, error) {
	rows, err := r.db().Query(`
		SELECT COALESCE(vehicle_type,''), COALESCE(fixed_salary,0), COALESCE(diesel,0),
		       COALESCE(ad_blue,0), COALESCE(advance_amt,0)
		FROM route_salaries WHERE route_id=? ORDER BY id ASC
	`, routeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.RouteSalary{}
	for rows.Next() {
		var s models.RouteSalary
		if err := rows.Scan(&s.VehicleType, &s.FixedSalary, &s.Diesel, &s.AdBlue, &s.AdvanceAmt); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r RouteRepository) replaceSalary(routeID int64, salary []models.RouteSalary) error {
	if _, err := r.db().Exec(`DELETE FROM route_salaries WHERE route_id=?`, routeID); err != nil {
		return err
	}
	for _, s := range salary {
		if _, err := r.db().Exec(`
			INSERT INTO route_salaries (route_id, vehicle_type, fixed_salary, diesel, ad_blue, advance_amt)
			VALUES (?,?,?,?,?,?)
		`, routeID, s.VehicleType, s.FixedSalary, s.Diesel, s.AdBlue, s.AdvanceAmt); err != nil {
			return err
		}
	}
	return nil
}
