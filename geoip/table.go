package geoip

// ranges is the embedded lookup table. First match wins, so ordering is
// the contract: special-purpose space first, then anycast resolvers,
// then per-region cloud blocks, then cloud/CDN aggregates, then national
// ISP allocations. Keep new entries in the tier they belong to.
var ranges = []Range{
	// ── Special-purpose space ────────────────────────────────────────
	cidr(127, 0, 0, 0, 8, "LOCAL", "🏠", "Loopback"),
	cidr(10, 0, 0, 0, 8, "PRIVATE", "🔒", "Private (RFC 1918)"),
	cidr(172, 16, 0, 0, 12, "PRIVATE", "🔒", "Private (RFC 1918)"),
	cidr(192, 168, 0, 0, 16, "PRIVATE", "🔒", "Private (RFC 1918)"),
	cidr(169, 254, 0, 0, 16, "PRIVATE", "🔒", "Link-Local"),
	cidr(100, 64, 0, 0, 10, "PRIVATE", "🔒", "Carrier-Grade NAT"),
	cidr(192, 0, 2, 0, 24, "PRIVATE", "🔒", "Documentation (TEST-NET-1)"),
	cidr(198, 51, 100, 0, 24, "PRIVATE", "🔒", "Documentation (TEST-NET-2)"),
	cidr(203, 0, 113, 0, 24, "PRIVATE", "🔒", "Documentation (TEST-NET-3)"),

	// ── Anycast resolvers ────────────────────────────────────────────
	cidr(8, 8, 8, 0, 24, "US", "🇺🇸", "Google Public DNS"),
	cidr(8, 8, 4, 0, 24, "US", "🇺🇸", "Google Public DNS"),
	cidr(1, 1, 1, 0, 24, "US", "🇺🇸", "Cloudflare DNS"),
	cidr(1, 0, 0, 0, 24, "US", "🇺🇸", "Cloudflare DNS"),
	cidr(9, 9, 9, 0, 24, "US", "🇺🇸", "Quad9 DNS"),
	cidr(149, 112, 112, 0, 24, "US", "🇺🇸", "Quad9 DNS"),
	cidr(208, 67, 222, 0, 24, "US", "🇺🇸", "OpenDNS"),
	cidr(208, 67, 220, 0, 24, "US", "🇺🇸", "OpenDNS"),
	cidr(4, 2, 2, 0, 24, "US", "🇺🇸", "Level3 DNS"),
	cidr(114, 114, 114, 0, 24, "CN", "🇨🇳", "114DNS"),
	cidr(168, 126, 63, 0, 24, "KR", "🇰🇷", "KT DNS"),

	// ── Cloud, per-region (before the provider aggregates) ──────────
	cidr(3, 248, 0, 0, 13, "IE", "🇮🇪", "AWS eu-west-1"),
	cidr(52, 28, 0, 0, 16, "DE", "🇩🇪", "AWS eu-central-1"),
	cidr(18, 184, 0, 0, 15, "DE", "🇩🇪", "AWS eu-central-1"),
	cidr(52, 56, 0, 0, 16, "GB", "🇬🇧", "AWS eu-west-2"),
	cidr(35, 176, 0, 0, 15, "GB", "🇬🇧", "AWS eu-west-2"),
	cidr(52, 47, 0, 0, 16, "FR", "🇫🇷", "AWS eu-west-3"),
	cidr(13, 48, 0, 0, 15, "SE", "🇸🇪", "AWS eu-north-1"),
	cidr(52, 192, 0, 0, 15, "JP", "🇯🇵", "AWS ap-northeast-1"),
	cidr(13, 112, 0, 0, 14, "JP", "🇯🇵", "AWS ap-northeast-1"),
	cidr(52, 78, 0, 0, 16, "KR", "🇰🇷", "AWS ap-northeast-2"),
	cidr(13, 228, 0, 0, 15, "SG", "🇸🇬", "AWS ap-southeast-1"),
	cidr(54, 252, 0, 0, 16, "AU", "🇦🇺", "AWS ap-southeast-2"),
	cidr(13, 232, 0, 0, 14, "IN", "🇮🇳", "AWS ap-south-1"),
	cidr(54, 233, 0, 0, 18, "BR", "🇧🇷", "AWS sa-east-1"),
	cidr(15, 222, 0, 0, 15, "CA", "🇨🇦", "AWS ca-central-1"),
	cidr(35, 198, 0, 0, 16, "DE", "🇩🇪", "GCP europe-west3"),
	cidr(34, 89, 0, 0, 17, "GB", "🇬🇧", "GCP europe-west2"),
	cidr(35, 189, 0, 0, 17, "AU", "🇦🇺", "GCP australia-southeast1"),
	cidr(34, 84, 0, 0, 15, "JP", "🇯🇵", "GCP asia-northeast1"),
	cidr(51, 140, 0, 0, 14, "GB", "🇬🇧", "Azure UK South"),
	cidr(51, 105, 0, 0, 16, "DE", "🇩🇪", "Azure Germany"),
	cidr(20, 43, 64, 0, 19, "IN", "🇮🇳", "Azure Central India"),
	cidr(54, 36, 0, 0, 14, "FR", "🇫🇷", "OVH"),
	cidr(51, 38, 0, 0, 16, "FR", "🇫🇷", "OVH"),
	cidr(51, 68, 0, 0, 16, "FR", "🇫🇷", "OVH"),
	cidr(188, 166, 0, 0, 16, "NL", "🇳🇱", "DigitalOcean AMS"),
	cidr(178, 62, 0, 0, 16, "GB", "🇬🇧", "DigitalOcean LON"),
	cidr(128, 199, 0, 0, 16, "SG", "🇸🇬", "DigitalOcean SGP"),
	cidr(139, 59, 0, 0, 17, "IN", "🇮🇳", "DigitalOcean BLR"),
	cidr(95, 216, 0, 0, 16, "FI", "🇫🇮", "Hetzner Helsinki"),
	cidr(65, 21, 0, 0, 16, "FI", "🇫🇮", "Hetzner Helsinki"),
	cidr(135, 181, 0, 0, 16, "FI", "🇫🇮", "Hetzner Helsinki"),

	// ── Cloud / CDN aggregates ───────────────────────────────────────
	cidr(3, 0, 0, 0, 9, "US", "🇺🇸", "Amazon AWS"),
	cidr(52, 0, 0, 0, 8, "US", "🇺🇸", "Amazon AWS"),
	cidr(54, 0, 0, 0, 8, "US", "🇺🇸", "Amazon AWS"),
	cidr(18, 204, 0, 0, 14, "US", "🇺🇸", "AWS us-east-1"),
	cidr(34, 64, 0, 0, 10, "US", "🇺🇸", "Google Cloud"),
	cidr(35, 184, 0, 0, 13, "US", "🇺🇸", "Google Cloud"),
	cidr(40, 64, 0, 0, 10, "US", "🇺🇸", "Microsoft Azure"),
	cidr(20, 33, 0, 0, 16, "US", "🇺🇸", "Microsoft Azure"),
	cidr(104, 16, 0, 0, 13, "US", "🇺🇸", "Cloudflare"),
	cidr(172, 64, 0, 0, 13, "US", "🇺🇸", "Cloudflare"),
	cidr(151, 101, 0, 0, 16, "US", "🇺🇸", "Fastly"),
	cidr(199, 232, 0, 0, 16, "US", "🇺🇸", "Fastly"),
	cidr(23, 192, 0, 0, 11, "US", "🇺🇸", "Akamai"),
	cidr(96, 16, 0, 0, 15, "US", "🇺🇸", "Akamai"),
	cidr(167, 99, 0, 0, 16, "US", "🇺🇸", "DigitalOcean NYC"),
	cidr(159, 89, 0, 0, 16, "US", "🇺🇸", "DigitalOcean SFO"),

	// ── Corporate networks ──────────────────────────────────────────
	cidr(142, 250, 0, 0, 15, "US", "🇺🇸", "Google"),
	cidr(172, 217, 0, 0, 16, "US", "🇺🇸", "Google"),
	cidr(74, 125, 0, 0, 16, "US", "🇺🇸", "Google"),
	cidr(64, 233, 160, 0, 19, "US", "🇺🇸", "Google"),
	cidr(66, 249, 64, 0, 19, "US", "🇺🇸", "Googlebot"),
	cidr(17, 0, 0, 0, 8, "US", "🇺🇸", "Apple"),
	cidr(13, 107, 0, 0, 16, "US", "🇺🇸", "Microsoft"),
	cidr(204, 79, 197, 0, 24, "US", "🇺🇸", "Microsoft Bing"),
	cidr(157, 240, 0, 0, 16, "US", "🇺🇸", "Meta"),
	cidr(31, 13, 64, 0, 18, "IE", "🇮🇪", "Meta Dublin"),
	cidr(192, 30, 252, 0, 22, "US", "🇺🇸", "GitHub"),
	cidr(140, 82, 112, 0, 20, "US", "🇺🇸", "GitHub"),
	cidr(185, 199, 108, 0, 22, "US", "🇺🇸", "GitHub Pages"),
	cidr(220, 181, 0, 0, 16, "CN", "🇨🇳", "Baidu"),
	cidr(123, 125, 0, 0, 16, "CN", "🇨🇳", "Baidu"),
	cidr(101, 226, 0, 0, 16, "CN", "🇨🇳", "Tencent"),
	cidr(77, 88, 0, 0, 18, "RU", "🇷🇺", "Yandex"),
	cidr(5, 255, 192, 0, 18, "RU", "🇷🇺", "Yandex"),
	cidr(87, 250, 224, 0, 19, "RU", "🇷🇺", "Yandex"),

	// ── Hosting / national ISPs ─────────────────────────────────────
	cidr(148, 251, 0, 0, 16, "DE", "🇩🇪", "Hetzner"),
	cidr(88, 198, 0, 0, 16, "DE", "🇩🇪", "Hetzner"),
	cidr(78, 46, 0, 0, 15, "DE", "🇩🇪", "Hetzner"),
	cidr(5, 9, 0, 0, 16, "DE", "🇩🇪", "Hetzner"),
	cidr(136, 243, 0, 0, 16, "DE", "🇩🇪", "Hetzner"),
	cidr(176, 9, 0, 0, 16, "DE", "🇩🇪", "Hetzner"),
	cidr(94, 130, 0, 0, 16, "DE", "🇩🇪", "Hetzner"),
	cidr(213, 239, 192, 0, 18, "DE", "🇩🇪", "Hetzner"),
	cidr(217, 160, 0, 0, 16, "DE", "🇩🇪", "IONOS"),
	cidr(80, 128, 0, 0, 11, "DE", "🇩🇪", "Deutsche Telekom"),
	cidr(62, 210, 0, 0, 16, "FR", "🇫🇷", "Scaleway"),
	cidr(51, 15, 0, 0, 16, "FR", "🇫🇷", "Scaleway"),
	cidr(163, 172, 0, 0, 16, "FR", "🇫🇷", "Scaleway"),
	cidr(90, 0, 0, 0, 9, "FR", "🇫🇷", "Orange"),
	cidr(81, 128, 0, 0, 11, "GB", "🇬🇧", "BT"),
	cidr(130, 244, 0, 0, 16, "SE", "🇸🇪", "Telia"),
	cidr(130, 59, 0, 0, 16, "CH", "🇨🇭", "SWITCH"),
	cidr(129, 132, 0, 0, 16, "CH", "🇨🇭", "ETH Zurich"),
	cidr(151, 0, 0, 0, 10, "IT", "🇮🇹", "Telecom Italia"),
	cidr(153, 19, 0, 0, 16, "PL", "🇵🇱", "PIONIER"),
	cidr(94, 210, 0, 0, 15, "NL", "🇳🇱", "Ziggo"),
	cidr(145, 220, 0, 0, 14, "NL", "🇳🇱", "SURFnet"),
	cidr(126, 0, 0, 0, 8, "JP", "🇯🇵", "SoftBank"),
	cidr(133, 0, 0, 0, 8, "JP", "🇯🇵", "JPNIC"),
	cidr(175, 192, 0, 0, 10, "KR", "🇰🇷", "KT"),
	cidr(183, 0, 0, 0, 10, "CN", "🇨🇳", "China Telecom"),
	cidr(117, 192, 0, 0, 10, "IN", "🇮🇳", "BSNL"),
	cidr(200, 160, 0, 0, 16, "BR", "🇧🇷", "NIC.br"),
	cidr(177, 0, 0, 0, 8, "BR", "🇧🇷", "LACNIC Brazil"),
	cidr(99, 224, 0, 0, 11, "CA", "🇨🇦", "Rogers"),
	cidr(24, 48, 0, 0, 12, "CA", "🇨🇦", "Videotron"),
	cidr(1, 128, 0, 0, 11, "AU", "🇦🇺", "Telstra"),
	cidr(101, 160, 0, 0, 11, "AU", "🇦🇺", "Telstra"),
	cidr(73, 0, 0, 0, 8, "US", "🇺🇸", "Comcast"),
	cidr(31, 173, 0, 0, 16, "RU", "🇷🇺", "MTS"),
	cidr(8, 0, 0, 0, 8, "US", "🇺🇸", "Level3"),
}

// TableSize returns the number of embedded ranges.
func TableSize() int { return len(ranges) }
