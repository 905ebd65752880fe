// Package msgs holds the ROS message types used by the avoider node. The
// subpackages are generated by gengo from the ROS message definitions.
package msgs

//go:generate gengo -out=. -import_path=github.com/edwinhayes/avoider/msgs msg std_msgs/Header
//go:generate gengo -out=. -import_path=github.com/edwinhayes/avoider/msgs msg geometry_msgs/Twist
//go:generate gengo -out=. -import_path=github.com/edwinhayes/avoider/msgs msg sensor_msgs/LaserScan
//go:generate gengo -out=. -import_path=github.com/edwinhayes/avoider/msgs msg nav_msgs/Odometry
