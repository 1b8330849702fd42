package catalog

import "github.com/example/asnmemo/pkg/models"

// networks is the built-in catalog. Order is significant: it is the
// stable tie-break for due-card selection.
var networks = []models.Network{
	{
		ASN:            3356,
		Name:           "Lumen Technologies",
		Tier:           models.TierOne,
		Headquarters:   "Monroe, Louisiana, USA",
		Specialization: "Global backbone, formerly CenturyLink/Level 3",
		Facts: []string{
			"Formed from CenturyLink's acquisition of Level 3 in 2017",
			"One of the largest global IP backbones",
			"Operates extensive fiber network across North America, Europe, and Asia",
		},
	},
	{
		ASN:            174,
		Name:           "Cogent Communications",
		Tier:           models.TierOne,
		Headquarters:   "Washington, D.C., USA",
		Specialization: "Low-cost transit, aggressive peering policies",
		Facts: []string{
			"Known for aggressive pricing and peering disputes",
			"Transit-free since 2004",
			"Focused on high-bandwidth business customers",
		},
	},
	{
		ASN:            2914,
		Name:           "NTT Communications",
		Tier:           models.TierOne,
		Headquarters:   "Tokyo, Japan",
		Specialization: "Global Tier 1, strong Asia-Pacific presence",
		Facts: []string{
			"Subsidiary of Nippon Telegraph and Telephone",
			"Operates Global IP Network (GIN)",
			"Major presence in Asia, Americas, and Europe",
		},
	},
	{
		ASN:            1299,
		Name:           "Arelion (formerly Telia Carrier)",
		Tier:           models.TierOne,
		Headquarters:   "Stockholm, Sweden",
		Specialization: "European backbone, transatlantic cables",
		Facts: []string{
			"Rebranded from Telia Carrier in 2022",
			"Owns extensive submarine cable systems",
			"Strong presence in Northern Europe and transatlantic routes",
		},
	},
	{
		ASN:            3257,
		Name:           "GTT Communications",
		Tier:           models.TierOne,
		Headquarters:   "McLean, Virginia, USA",
		Specialization: "Enterprise networking, global backbone",
		Facts: []string{
			"Grew through acquisitions (Interoute, Hibernia)",
			"Focus on multinational enterprise customers",
			"Operates Tier 1 IP backbone",
		},
	},
	{
		ASN:            6762,
		Name:           "Telecom Italia Sparkle",
		Tier:           models.TierOne,
		Headquarters:   "Rome, Italy",
		Specialization: "Mediterranean connectivity, submarine cables",
		Facts: []string{
			"International arm of Telecom Italia",
			"Strong presence in Mediterranean and Middle East",
			"Operates Seabone global backbone",
		},
	},
	{
		ASN:            6453,
		Name:           "TATA Communications",
		Tier:           models.TierOne,
		Headquarters:   "Mumbai, India",
		Specialization: "India connectivity, submarine cables",
		Facts: []string{
			"Owns the largest submarine cable network globally",
			"Strong presence in emerging markets",
			"Formerly VSNL (Videsh Sanchar Nigam Limited)",
		},
	},
	{
		ASN:            701,
		Name:           "Verizon Business",
		Tier:           models.TierOne,
		Headquarters:   "Basking Ridge, New Jersey, USA",
		Specialization: "Enterprise services, US backbone",
		Facts: []string{
			"One of the original Internet backbone providers",
			"Acquired MCI/UUNET in 2006",
			"Major enterprise and government contracts",
		},
	},
	{
		ASN:            7018,
		Name:           "AT&T",
		Tier:           models.TierOne,
		Headquarters:   "Dallas, Texas, USA",
		Specialization: "US telecommunications, global backbone",
		Facts: []string{
			"Largest telecommunications company in the world by revenue",
			"Extensive US fiber infrastructure",
			"Major mobile carrier and ISP",
		},
	},
	{
		ASN:            3491,
		Name:           "PCCW Global",
		Tier:           models.TierOne,
		Headquarters:   "Hong Kong",
		Specialization: "Asia-Pacific connectivity",
		Facts: []string{
			"Subsidiary of PCCW Limited",
			"Strong presence in Greater China and Asia-Pacific",
			"Operates extensive submarine cable systems in Asia",
		},
	},
	{
		ASN:            5511,
		Name:           "Orange S.A.",
		Tier:           models.TierOne,
		Headquarters:   "Paris, France",
		Specialization: "European backbone, Africa presence",
		Facts: []string{
			"Formerly France Telecom",
			"Major presence in Europe and Africa",
			"One of the largest European carriers",
		},
	},
	{
		ASN:            6830,
		Name:           "Liberty Global",
		Tier:           models.TierOne,
		Headquarters:   "London, UK / Denver, USA",
		Specialization: "European cable networks",
		Facts: []string{
			"Largest cable operator in Europe",
			"Owns Virgin Media, Telenet, UPC",
			"Strong residential broadband focus",
		},
	},
	{
		ASN:            1239,
		Name:           "Sprint (T-Mobile)",
		Tier:           models.TierOne,
		Headquarters:   "Overland Park, Kansas, USA",
		Specialization: "US backbone, merged with T-Mobile",
		Facts: []string{
			"Merged with T-Mobile in 2020",
			"Historic Tier 1 backbone provider",
			"SprintLink was major IP transit network",
		},
	},
	{
		ASN:            12956,
		Name:           "Telefonica",
		Tier:           models.TierOne,
		Headquarters:   "Madrid, Spain",
		Specialization: "Spain and Latin America connectivity",
		Facts: []string{
			"Major presence in Spanish-speaking countries",
			"Operates under Movistar brand",
			"Strong Latin American backbone",
		},
	},
	{
		ASN:            6939,
		Name:           "Hurricane Electric",
		Tier:           models.TierTwo,
		Headquarters:   "Fremont, California, USA",
		Specialization: "IPv6 pioneer, extensive peering",
		Facts: []string{
			"Largest IPv6 backbone in the world",
			"Free IPv6 tunnel broker service",
			"Peers at most major IXPs globally",
			"Known for aggressive peering policy",
		},
	},
	{
		ASN:            7922,
		Name:           "Comcast",
		Tier:           models.TierTwo,
		Headquarters:   "Philadelphia, Pennsylvania, USA",
		Specialization: "US cable ISP, Xfinity brand",
		Facts: []string{
			"Largest cable company in the United States",
			"Operates under Xfinity brand for consumers",
			"Major residential broadband provider",
		},
	},
	{
		ASN:            4134,
		Name:           "China Telecom",
		Tier:           models.TierTwo,
		Headquarters:   "Beijing, China",
		Specialization: "Chinese backbone, ChinaNet",
		Facts: []string{
			"One of the 'Big Three' Chinese carriers",
			"Operates ChinaNet backbone",
			"Largest fixed-line operator in China",
		},
	},
	{
		ASN:            4837,
		Name:           "China Unicom",
		Tier:           models.TierTwo,
		Headquarters:   "Beijing, China",
		Specialization: "Chinese backbone, CNCGROUP",
		Facts: []string{
			"Second largest Chinese carrier",
			"Strong mobile presence in China",
			"Operates China169 backbone",
		},
	},
	{
		ASN:            9002,
		Name:           "RETN",
		Tier:           models.TierTwo,
		Headquarters:   "London, UK",
		Specialization: "Europe to Asia connectivity",
		Facts: []string{
			"Connects Europe to Asia via Russia",
			"Low-latency routes between continents",
			"Independent pan-European carrier",
		},
	},
	{
		ASN:            3320,
		Name:           "Deutsche Telekom",
		Tier:           models.TierTwo,
		Headquarters:   "Bonn, Germany",
		Specialization: "German backbone, European presence",
		Facts: []string{
			"Largest telecommunications provider in Europe",
			"Parent company of T-Mobile US",
			"Strong enterprise services division",
		},
	},
	{
		ASN:            2516,
		Name:           "KDDI Corporation",
		Tier:           models.TierTwo,
		Headquarters:   "Tokyo, Japan",
		Specialization: "Japanese carrier, Asia-Pacific",
		Facts: []string{
			"Second largest Japanese carrier",
			"Operates au mobile brand",
			"Strong presence in Asia-Pacific submarine cables",
		},
	},
	{
		ASN:            4766,
		Name:           "Korea Telecom",
		Tier:           models.TierTwo,
		Headquarters:   "Seongnam, South Korea",
		Specialization: "South Korean backbone",
		Facts: []string{
			"Largest telecommunications company in South Korea",
			"Pioneer in fiber-to-the-home deployments",
			"Known for ultra-fast broadband speeds",
		},
	},
	{
		ASN:            9498,
		Name:           "Bharti Airtel",
		Tier:           models.TierTwo,
		Headquarters:   "New Delhi, India",
		Specialization: "Indian carrier, Africa presence",
		Facts: []string{
			"Largest mobile operator in India",
			"Significant presence in Africa",
			"Major submarine cable investor",
		},
	},
	{
		ASN:            4323,
		Name:           "TW Telecom (Lumen)",
		Tier:           models.TierTwo,
		Headquarters:   "Littleton, Colorado, USA",
		Specialization: "US enterprise services",
		Facts: []string{
			"Acquired by Level 3 in 2014 (now Lumen)",
			"Focus on enterprise customers",
			"Extensive US metro fiber networks",
		},
	},
	{
		ASN:            7843,
		Name:           "Charter Communications",
		Tier:           models.TierThree,
		Headquarters:   "Stamford, Connecticut, USA",
		Specialization: "US cable ISP, Spectrum brand",
		Facts: []string{
			"Second largest cable operator in the US",
			"Operates under Spectrum brand",
			"Formed from Charter/Time Warner Cable merger",
		},
	},
	{
		ASN:            22773,
		Name:           "Cox Communications",
		Tier:           models.TierThree,
		Headquarters:   "Atlanta, Georgia, USA",
		Specialization: "US cable ISP",
		Facts: []string{
			"Third largest cable company in the US",
			"Privately held company",
			"Focus on residential and business services",
		},
	},
	{
		ASN:            5650,
		Name:           "Frontier Communications",
		Tier:           models.TierThree,
		Headquarters:   "Norwalk, Connecticut, USA",
		Specialization: "US rural telecommunications",
		Facts: []string{
			"Focus on rural and suburban markets",
			"Acquired Verizon FiOS territories",
			"Emerged from bankruptcy in 2021",
		},
	},
	{
		ASN:            20115,
		Name:           "Charter Communications",
		Tier:           models.TierThree,
		Headquarters:   "Stamford, Connecticut, USA",
		Specialization: "Spectrum Business services",
		Facts: []string{
			"Business services division of Charter",
			"Enterprise and SMB focus",
			"Separate ASN from residential services",
		},
	},
	{
		ASN:            11351,
		Name:           "Road Runner (Spectrum)",
		Tier:           models.TierThree,
		Headquarters:   "Stamford, Connecticut, USA",
		Specialization: "Legacy Time Warner Cable network",
		Facts: []string{
			"Historic Time Warner Cable ASN",
			"Now part of Charter/Spectrum",
			"Still used for some legacy infrastructure",
		},
	},
	{
		ASN:            11426,
		Name:           "Verizon FiOS",
		Tier:           models.TierThree,
		Headquarters:   "Basking Ridge, New Jersey, USA",
		Specialization: "Fiber-to-the-home service",
		Facts: []string{
			"First major US FTTH deployment",
			"Covers northeastern US primarily",
			"Uses GPON technology",
		},
	},
	{
		ASN:            13335,
		Name:           "Cloudflare",
		Tier:           models.TierCDN,
		Headquarters:   "San Francisco, California, USA",
		Specialization: "CDN, DDoS protection, DNS",
		Facts: []string{
			"Operates 1.1.1.1 public DNS resolver",
			"Anycast network in 300+ cities",
			"Major DDoS mitigation provider",
			"Founded in 2009",
		},
	},
	{
		ASN:            20940,
		Name:           "Akamai Technologies",
		Tier:           models.TierCDN,
		Headquarters:   "Cambridge, Massachusetts, USA",
		Specialization: "Largest CDN, edge computing",
		Facts: []string{
			"World's largest CDN by traffic",
			"Founded in 1998 at MIT",
			"Delivers 15-30% of all web traffic",
			"Pioneer in content delivery technology",
		},
	},
	{
		ASN:            54113,
		Name:           "Fastly",
		Tier:           models.TierCDN,
		Headquarters:   "San Francisco, California, USA",
		Specialization: "Edge cloud platform, real-time CDN",
		Facts: []string{
			"Focus on programmable edge computing",
			"Real-time log streaming",
			"Used by major tech companies",
		},
	},
	{
		ASN:            15133,
		Name:           "Edgecast (Edgio)",
		Tier:           models.TierCDN,
		Headquarters:   "Los Angeles, California, USA",
		Specialization: "CDN and streaming",
		Facts: []string{
			"Formerly Verizon Digital Media Services",
			"Now part of Edgio (merged with Limelight)",
			"Focus on video streaming",
		},
	},
	{
		ASN:            22822,
		Name:           "Limelight Networks (Edgio)",
		Tier:           models.TierCDN,
		Headquarters:   "Tempe, Arizona, USA",
		Specialization: "Video delivery, gaming",
		Facts: []string{
			"Merged with Edgecast to form Edgio",
			"Specialized in video delivery",
			"Strong gaming industry presence",
		},
	},
	{
		ASN:            2906,
		Name:           "Netflix",
		Tier:           models.TierCDN,
		Headquarters:   "Los Gatos, California, USA",
		Specialization: "Open Connect CDN",
		Facts: []string{
			"Operates Open Connect CDN",
			"Deploys cache appliances at ISPs",
			"Accounts for significant Internet traffic",
		},
	},
	{
		ASN:            46489,
		Name:           "Twitch",
		Tier:           models.TierCDN,
		Headquarters:   "San Francisco, California, USA",
		Specialization: "Live streaming platform",
		Facts: []string{
			"Owned by Amazon",
			"Largest live streaming platform for gaming",
			"Uses own CDN infrastructure",
		},
	},
	{
		ASN:            16509,
		Name:           "Amazon Web Services",
		Tier:           models.TierCloud,
		Headquarters:   "Seattle, Washington, USA",
		Specialization: "Cloud computing, AWS",
		Facts: []string{
			"Largest cloud provider globally",
			"Launched in 2006",
			"Operates CloudFront CDN",
			"Multiple availability zones worldwide",
		},
	},
	{
		ASN:            14618,
		Name:           "Amazon.com",
		Tier:           models.TierCloud,
		Headquarters:   "Seattle, Washington, USA",
		Specialization: "Amazon corporate and retail",
		Facts: []string{
			"Amazon's corporate ASN",
			"Separate from AWS infrastructure",
			"Handles amazon.com traffic",
		},
	},
	{
		ASN:            15169,
		Name:           "Google",
		Tier:           models.TierCloud,
		Headquarters:   "Mountain View, California, USA",
		Specialization: "Google Cloud, Search, YouTube",
		Facts: []string{
			"Operates Google Cloud Platform",
			"YouTube is world's largest video platform",
			"Extensive private fiber network (B4)",
			"Pioneer in SDN and network automation",
		},
	},
	{
		ASN:            8075,
		Name:           "Microsoft Azure",
		Tier:           models.TierCloud,
		Headquarters:   "Redmond, Washington, USA",
		Specialization: "Cloud computing, Office 365",
		Facts: []string{
			"Second largest cloud provider",
			"Operates Azure and Office 365",
			"60+ regions worldwide",
			"Extensive enterprise presence",
		},
	},
	{
		ASN:            36351,
		Name:           "IBM Cloud (SoftLayer)",
		Tier:           models.TierCloud,
		Headquarters:   "Dallas, Texas, USA",
		Specialization: "Enterprise cloud, bare metal",
		Facts: []string{
			"Acquired by IBM in 2013",
			"Focus on enterprise workloads",
			"Bare metal server offerings",
		},
	},
	{
		ASN:            45102,
		Name:           "Alibaba Cloud",
		Tier:           models.TierCloud,
		Headquarters:   "Hangzhou, China",
		Specialization: "Chinese cloud provider",
		Facts: []string{
			"Largest cloud provider in Asia",
			"Part of Alibaba Group",
			"Strong presence in China and Asia-Pacific",
		},
	},
	{
		ASN:            13414,
		Name:           "Twitter (X)",
		Tier:           models.TierCloud,
		Headquarters:   "San Francisco, California, USA",
		Specialization: "Social media platform",
		Facts: []string{
			"Rebranded to X in 2023",
			"Operates own edge infrastructure",
			"High-volume real-time platform",
		},
	},
	{
		ASN:            32934,
		Name:           "Meta (Facebook)",
		Tier:           models.TierCloud,
		Headquarters:   "Menlo Park, California, USA",
		Specialization: "Social media, VR platforms",
		Facts: []string{
			"Operates Facebook, Instagram, WhatsApp",
			"Massive internal network infrastructure",
			"Major submarine cable investor",
			"Developing metaverse platform",
		},
	},
	{
		ASN:            714,
		Name:           "Apple",
		Tier:           models.TierCloud,
		Headquarters:   "Cupertino, California, USA",
		Specialization: "iCloud, App Store, services",
		Facts: []string{
			"Operates iCloud services",
			"Major CDN for App Store and software updates",
			"Uses own and third-party infrastructure",
		},
	},
	{
		ASN:            396982,
		Name:           "Google Cloud",
		Tier:           models.TierCloud,
		Headquarters:   "Mountain View, California, USA",
		Specialization: "Google Cloud Platform dedicated ASN",
		Facts: []string{
			"Dedicated ASN for GCP services",
			"Separate from main Google ASN",
			"Used for cloud customer traffic",
		},
	},
	{
		ASN:            19679,
		Name:           "Dropbox",
		Tier:           models.TierCloud,
		Headquarters:   "San Francisco, California, USA",
		Specialization: "Cloud storage",
		Facts: []string{
			"Migrated from AWS to own infrastructure",
			"Major cloud storage provider",
			"Operates Magic Pocket storage system",
		},
	},
	{
		ASN:            6695,
		Name:           "DE-CIX Frankfurt",
		Tier:           models.TierIXP,
		Headquarters:   "Frankfurt, Germany",
		Specialization: "Largest IXP by traffic",
		Facts: []string{
			"World's largest Internet exchange by peak traffic",
			"Over 1000 connected networks",
			"Founded in 1995",
			"Peak traffic over 14 Tbps",
		},
	},
	{
		ASN:            1200,
		Name:           "AMS-IX",
		Tier:           models.TierIXP,
		Headquarters:   "Amsterdam, Netherlands",
		Specialization: "Major European IXP",
		Facts: []string{
			"One of the oldest IXPs in the world",
			"Founded in 1997",
			"Over 900 connected members",
			"Critical for European Internet traffic",
		},
	},
	{
		ASN:            24115,
		Name:           "LINX",
		Tier:           models.TierIXP,
		Headquarters:   "London, UK",
		Specialization: "London Internet Exchange",
		Facts: []string{
			"One of the oldest IXPs",
			"Founded in 1994",
			"Multiple locations in London area",
			"Over 950 member ASNs",
		},
	},
	{
		ASN:            8674,
		Name:           "Netnod",
		Tier:           models.TierIXP,
		Headquarters:   "Stockholm, Sweden",
		Specialization: "Swedish IXP, root DNS operator",
		Facts: []string{
			"Operates i.root-servers.net",
			"Multiple locations across Sweden",
			"Also provides time services",
		},
	},
	{
		ASN:            7521,
		Name:           "Japan Network Access Point (JPNAP)",
		Tier:           models.TierIXP,
		Headquarters:   "Tokyo, Japan",
		Specialization: "Major Japanese IXP",
		Facts: []string{
			"Largest IXP in Japan",
			"Operated by Internet Multifeed",
			"Critical for Asia-Pacific connectivity",
		},
	},
	{
		ASN:            24940,
		Name:           "Hetzner",
		Tier:           models.TierCloud,
		Headquarters:   "Gunzenhausen, Germany",
		Specialization: "European hosting provider",
		Facts: []string{
			"Popular for affordable dedicated servers",
			"Data centers in Germany and Finland",
			"Known for competitive pricing",
		},
	},
	{
		ASN:            13238,
		Name:           "Yandex",
		Tier:           models.TierCloud,
		Headquarters:   "Moscow, Russia",
		Specialization: "Russian search and cloud",
		Facts: []string{
			"Largest Russian search engine",
			"Operates Yandex Cloud",
			"Major technology company in Russia",
		},
	},
	{
		ASN:            14061,
		Name:           "DigitalOcean",
		Tier:           models.TierCloud,
		Headquarters:   "New York City, USA",
		Specialization: "Developer-focused cloud",
		Facts: []string{
			"Popular with developers and startups",
			"Simple, affordable cloud services",
			"Known for Droplets (VPS)",
		},
	},
	{
		ASN:            63949,
		Name:           "Linode (Akamai)",
		Tier:           models.TierCloud,
		Headquarters:   "Philadelphia, Pennsylvania, USA",
		Specialization: "Developer-focused cloud",
		Facts: []string{
			"Acquired by Akamai in 2022",
			"Founded in 2003",
			"Pioneer in cloud VPS hosting",
		},
	},
	{
		ASN:            20473,
		Name:           "Vultr",
		Tier:           models.TierCloud,
		Headquarters:   "Matawan, New Jersey, USA",
		Specialization: "Cloud compute provider",
		Facts: []string{
			"Global cloud compute platform",
			"32 data center locations",
			"Owned by Constant Company",
		},
	},
	{
		ASN:            132203,
		Name:           "Tencent Cloud",
		Tier:           models.TierCloud,
		Headquarters:   "Shenzhen, China",
		Specialization: "Chinese cloud provider",
		Facts: []string{
			"Part of Tencent Holdings",
			"Operates WeChat infrastructure",
			"Major gaming cloud platform",
		},
	},
	{
		ASN:            398324,
		Name:           "Starlink",
		Tier:           models.TierThree,
		Headquarters:   "Hawthorne, California, USA",
		Specialization: "Satellite Internet",
		Facts: []string{
			"SpaceX satellite internet service",
			"Low-Earth orbit constellation",
			"Global coverage expanding",
		},
	},
}
