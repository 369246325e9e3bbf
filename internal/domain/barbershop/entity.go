package barbershop

import "github.com/BruksfildServices01/barber-finder/internal/models"

// ===============================
// Authorization Rules
// ===============================

// CanModify gates every mutation of a barbershop: only its creator or an
// admin may touch it.
func CanModify(shop *models.Barbershop, callerID, callerRole string) bool {
	if shop == nil {
		return false
	}
	return shop.CreatedBy == callerID || callerRole == models.RoleAdmin
}

// CanCreate restricts barbershop ownership to barbers and admins.
func CanCreate(callerRole string) bool {
	return callerRole == models.RoleBarber || callerRole == models.RoleAdmin
}
