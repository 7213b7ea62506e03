package remote

// SearchURL asks wallhaven for one page of random SFW wallpapers of at least
// 1920x1080 in the common 16:9 desktop resolutions.
const SearchURL = "https://wallhaven.cc/api/v1/search?sorting=random&categories=111&purity=100&atleast=1920x1080&resolutions=1920x1080,2560x1440,3840x2160"
