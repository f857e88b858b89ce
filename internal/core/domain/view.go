package domain

// ViewVariant names the top-level screen a client should present.
type ViewVariant string

const (
	ViewLogin  ViewVariant = "login"
	ViewMember ViewVariant = "member"
	ViewBearer ViewVariant = "bearer"
	ViewAdmin  ViewVariant = "admin"
)

// Page names a navigable page within a dashboard variant.
type Page string

const (
	PageHome          Page = "home"
	PageAnalytics     Page = "analytics"
	PageActivity      Page = "activity"
	PageProjects      Page = "projects"
	PageAttendance    Page = "attendance"
	PageMembers       Page = "members"
	PageAnnouncements Page = "announcements"
	PageProfile       Page = "profile"
	PageSettings      Page = "settings"
)

// DefaultPage is where every dashboard variant lands when entered.
const DefaultPage = PageHome

// memberMenu is the base navigation set shared by members and bearers.
var memberMenu = []Page{
	PageHome,
	PageActivity,
	PageProjects,
	PageAttendance,
	PageMembers,
	PageAnnouncements,
	PageProfile,
}

// bearerMenu is the member menu plus the bearer-exclusive analytics page,
// slotted directly after home to match the dashboard ordering.
var bearerMenu = []Page{
	PageHome,
	PageAnalytics,
	PageActivity,
	PageProjects,
	PageAttendance,
	PageMembers,
	PageAnnouncements,
	PageProfile,
}

var adminMenu = []Page{
	PageHome,
	PageMembers,
	PageAttendance,
	PageProjects,
	PageAnnouncements,
	PageSettings,
}

// Menu returns the fixed navigation set for a dashboard variant. The login
// view has no menu.
func (v ViewVariant) Menu() []Page {
	var src []Page
	switch v {
	case ViewMember:
		src = memberMenu
	case ViewBearer:
		src = bearerMenu
	case ViewAdmin:
		src = adminMenu
	default:
		return nil
	}
	menu := make([]Page, len(src))
	copy(menu, src)
	return menu
}
