package constants

// Static route constants
const (
	PublicRoute             = "/"
	LoginRoute              = "/login"
	AdminRoute              = "/admin"
	AdminVouchersRoute      = "/admin/vouchers"
	AdminAnnouncementsRoute = "/admin/announcements"
	AdminPagesRoute         = "/admin/pages"
)
