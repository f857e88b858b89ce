package directory

import "github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"

// Seed roster carried over from the club's original dataset. Demo data only;
// the real roster is expected to move behind the mongo directory eventually.
//
// Note the bearer partition repeats some id values (12, 15) — that is how the
// source data ships, and nothing in the system may key on id alone.

var seedMembers = []domain.User{
	{
		ID: "1", RID: "12434547", Password: "vishnu2024", Role: domain.RoleMember,
		Name: "Vishnu A", Email: "rtr.vishnu4@gmail.com", Phone: "+91 6381131740",
		Department: "-", JoinDate: "2023-08-15", Attendance: 92, DPPPoints: 450,
		Avatar: "/profile/vishnu.png",
	},
	{
		ID: "2", RID: "834573402", Password: "priya2024", Role: domain.RoleMember,
		Name: "Priya Sharma", Email: "priya.sharma@rotaract.org", Phone: "+91 98765 43211",
		Department: "International Service", JoinDate: "2023-07-20", Attendance: 88, DPPPoints: 520,
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Priya",
	},
	{
		ID: "3", RID: "834573403", Password: "vijay2024", Role: domain.RoleMember,
		Name: "Vijay Ramesh", Email: "vijay.ramesh@rotaract.org", Phone: "+91 98765 43212",
		Department: "Club Service", JoinDate: "2023-09-10", Attendance: 85, DPPPoints: 380,
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Vijay",
	},
	{
		ID: "4", RID: "834573404", Password: "sneha2024", Role: domain.RoleMember,
		Name: "Sneha Patel", Email: "sneha.patel@rotaract.org", Phone: "+91 98765 43213",
		Department: "Professional Development", JoinDate: "2023-06-05", Attendance: 95, DPPPoints: 680,
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Sneha",
	},
	{
		ID: "5", RID: "834573405", Password: "karthik2024", Role: domain.RoleMember,
		Name: "Karthik Reddy", Email: "karthik.reddy@rotaract.org", Phone: "+91 98765 43214",
		Department: "Sports & Recreation", JoinDate: "2023-08-25", Attendance: 78, DPPPoints: 310,
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Karthik",
	},
	{
		ID: "6", RID: "834573406", Password: "divya2024", Role: domain.RoleMember,
		Name: "Divya Menon", Email: "divya.menon@rotaract.org", Phone: "+91 98765 43215",
		Department: "Environment", JoinDate: "2023-07-12", Attendance: 90, DPPPoints: 475,
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Divya",
	},
	{
		ID: "7", RID: "834573407", Password: "rajesh2024", Role: domain.RoleMember,
		Name: "Rajesh Krishnan", Email: "rajesh.krishnan@rotaract.org", Phone: "+91 98765 43216",
		Department: "Public Relations", JoinDate: "2023-09-18", Attendance: 82, DPPPoints: 420,
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Rajesh",
	},
	{
		ID: "8", RID: "834573408", Password: "meera2024", Role: domain.RoleMember,
		Name: "Meera Iyer", Email: "meera.iyer@rotaract.org", Phone: "+91 98765 43217",
		Department: "Social Media", JoinDate: "2023-06-28", Attendance: 93, DPPPoints: 590,
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Meera",
	},
	{
		ID: "9", RID: "834573409", Password: "suresh2024", Role: domain.RoleMember,
		Name: "Suresh Naidu", Email: "suresh.naidu@rotaract.org", Phone: "+91 98765 43218",
		Department: "Finance", JoinDate: "2023-08-02", Attendance: 87, DPPPoints: 440,
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Suresh",
	},
	{
		ID: "10", RID: "834573410", Password: "lakshmi2024", Role: domain.RoleMember,
		Name: "Lakshmi Nair", Email: "lakshmi.nair@rotaract.org", Phone: "+91 98765 43219",
		Department: "Events", JoinDate: "2023-07-30", Attendance: 91, DPPPoints: 510,
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Lakshmi",
	},
}

var seedBearers = []domain.User{
	{
		ID: "11", RID: "12152803", Password: "pavishraj2026", Role: domain.RoleBearer,
		Name: "Rtr. Pavish Raj", Email: "-", Phone: "+91 9345792600",
		Position: "President", JoinDate: "2022-07-01", Attendance: 98, DPPPoints: 850,
		Avatar: "/profile/pavishraj.jpg",
	},
	{
		ID: "12", RID: "12209724", Password: "thulasi2024", Role: domain.RoleBearer,
		Name: "Rtr. Tulasi Dharan S", Email: "rtr.tulasidharans@gmail.com", Phone: "+91 9842899659",
		Position: "Secretary Admin", JoinDate: "2022-07-01", Attendance: 97, DPPPoints: 820,
		Avatar: "/profile/thulasi.jpg",
	},
	{
		ID: "12", RID: "11937106", Password: "sanjay2024", Role: domain.RoleBearer,
		Name: "Rtr. Sanjay B", Email: "rtr.sanjaychandar@gmail.com", Phone: "+91 9629709704",
		Position: "Club-Advisor", JoinDate: "2022-07-01", Attendance: 97, DPPPoints: 820,
		Avatar: "/profile/sanjay.png",
	},
	{
		ID: "12", RID: "12290254", Password: "shyam2024", Role: domain.RoleBearer,
		Name: "Rtr. Shyam V Madhu", Email: "rtr.shyamvmadhu@gmail.com", Phone: "+91 9842899659",
		Position: "Secretary communication", JoinDate: "2022-07-01", Attendance: 97, DPPPoints: 820,
		Avatar: "/profile/shyam.jpg",
	},
	{
		ID: "13", RID: "11937124", Password: "deepan2024", Role: domain.RoleBearer,
		Name: "Ipp.Deepan P", Email: "rtr.deepanp@gmail.com", Phone: "+91  6382517017",
		Position: "Immediate past president", JoinDate: "2022-07-01", Attendance: 96, DPPPoints: 790,
		Avatar: "/profile/deepan.jpg",
	},
	{
		ID: "14", RID: "12112531", Password: "thennikarthik2024", Role: domain.RoleBearer,
		Name: "Thennikarthik", Email: "thenni05bmc@gmail.com", Phone: "+91 9080275519",
		Position: "Tresurer", JoinDate: "2022-07-01", Attendance: 95, DPPPoints: 760,
		Avatar: "/profile/thenni.jpg",
	},
	{
		ID: "15", RID: "12098880", Password: "mohan2024", Role: domain.RoleBearer,
		Name: "Rtr. Mohana Sundaram S P", Email: "rtr.mohanasundaramsp@gmail.com ", Phone: "+91 9360536183",
		Position: "Vice-President", JoinDate: "2022-07-01", Attendance: 94, DPPPoints: 740,
		Avatar: "/profile/mohan.png",
	},
	{
		ID: "15", RID: "12121892", Password: "manisha2024", Role: domain.RoleBearer,
		Name: "Rtr. Manishashree S", Email: "rtr.manishashrees@gmail.com", Phone: "+91 7338999807",
		Position: "Joint-Secretary", JoinDate: "2022-07-01", Attendance: 94, DPPPoints: 740,
		Avatar: "/profile/manishashree.jpg",
	},
	{
		ID: "15", RID: "12209718", Password: "pazhani2024", Role: domain.RoleBearer,
		Name: "Rtr. Pazhanidharan K N", Email: "rtr.pazhanidharankn@gmail.com", Phone: "+91 8590957767",
		Position: "Chair-All Avenue", JoinDate: "2022-07-01", Attendance: 94, DPPPoints: 740,
		Avatar: "/profile/pazhani.jpg",
	},
}

var seedAdmins = []domain.User{
	{
		ID: "admin1", Username: "8823931", Password: "@RCC-2025", Role: domain.RoleAdmin,
		Name: "System Administrator", Email: "admin@rotaract.org", Phone: "+91 +91 98428 99659",
		Position: "System Admin", JoinDate: "2022-01-01",
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Admin",
	},
}
