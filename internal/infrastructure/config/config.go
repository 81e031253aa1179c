package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config 全局配置结构
// 设计说明：使用Viper管理配置，支持YAML文件、环境变量覆盖
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Data   DataConfig   `mapstructure:"data"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"` // debug | release | test
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DataConfig 数据文件配置
// 两张表各自持久化为一个带表头的CSV文件，小票是固定路径的文本文件
type DataConfig struct {
	Dir           string `mapstructure:"dir"`            // 数据目录
	InventoryFile string `mapstructure:"inventory_file"` // 库存表文件名
	SalesFile     string `mapstructure:"sales_file"`     // 销售表文件名
	ReceiptFile   string `mapstructure:"receipt_file"`   // 小票文件名
}

// InventoryPath 库存表完整路径
func (d DataConfig) InventoryPath() string {
	return filepath.Join(d.Dir, d.InventoryFile)
}

// SalesPath 销售表完整路径
func (d DataConfig) SalesPath() string {
	return filepath.Join(d.Dir, d.SalesFile)
}

// ReceiptPath 小票完整路径
func (d DataConfig) ReceiptPath() string {
	return filepath.Join(d.Dir, d.ReceiptFile)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug | info | warn | error
	Format string `mapstructure:"format"` // console | json
}

// Load 加载配置文件
// 支持：
// 1. 默认加载config/config.yaml
// 2. 环境变量覆盖（如BOOKPOS_SERVER_PORT、BOOKPOS_DATA_DIR）
func Load() (*Config, error) {
	v := viper.New()

	// 设置配置文件路径
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	// 默认值（配置文件缺省某项时生效）
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("data.dir", "./data")
	v.SetDefault("data.inventory_file", "books_inventory.csv")
	v.SetDefault("data.sales_file", "sales_history.csv")
	v.SetDefault("data.receipt_file", "receipt.txt")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	// 环境变量绑定（自动转换，如BOOKPOS_DATA_DIR → data.dir）
	v.SetEnvPrefix("BOOKPOS")
	v.AutomaticEnv()

	// 解析到结构体
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	// 配置验证
	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate 配置校验
func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("无效的服务端口: %d", cfg.Server.Port)
	}

	if cfg.Data.Dir == "" {
		return fmt.Errorf("数据目录不能为空")
	}

	return nil
}
