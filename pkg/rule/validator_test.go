package rule_test

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/yeisme/archivault/pkg/rule"
)

// storageRules 用于测试 ValidateStruct.
type storageRules struct {
	Bucket string `rule:"required"`
	Port   int    `rule:"min=1,max=65535"`
}

// TestEngine 测试 Engine 函数返回非 nil 实例.
func TestEngine(t *testing.T) {
	engine := rule.Engine()
	if engine == nil {
		t.Error("Engine() returned nil")
	}
}

// TestValidateStruct 测试 ValidateStruct 对有效和无效结构体的验证.
func TestValidateStruct(t *testing.T) {
	// 有效结构体
	valid := storageRules{Bucket: "archivault", Port: 9000}

	err := rule.ValidateStruct(valid)
	if err != nil {
		t.Errorf("Expected no error for valid struct, got %v", err)
	}

	// 无效结构体：缺少 Bucket
	invalid1 := storageRules{Bucket: "", Port: 9000}

	err = rule.ValidateStruct(invalid1)
	if err == nil {
		t.Error("Expected error for invalid struct (missing bucket), got nil")
	}

	// 无效结构体：端口越界
	invalid2 := storageRules{Bucket: "archivault", Port: 70000}

	err = rule.ValidateStruct(invalid2)
	if err == nil {
		t.Error("Expected error for invalid struct (port out of range), got nil")
	}
}

// TestValidateVar 测试 ValidateVar 对变量的验证.
func TestValidateVar(t *testing.T) {
	// 有效 hostname
	err := rule.ValidateVar("localhost", "required,hostname")
	if err != nil {
		t.Errorf("Expected no error for valid hostname, got %v", err)
	}

	// 无效 hostname
	err = rule.ValidateVar("bad host!", "required,hostname")
	if err == nil {
		t.Error("Expected error for invalid hostname, got nil")
	}

	// 有效数字
	err = rule.ValidateVar(8080, "min=1,max=65535")
	if err != nil {
		t.Errorf("Expected no error for valid number, got %v", err)
	}

	// 无效数字
	err = rule.ValidateVar(0, "min=1,max=65535")
	if err == nil {
		t.Error("Expected error for invalid number, got nil")
	}
}

// TestRegisterValidation 测试注册自定义验证.
func TestRegisterValidation(t *testing.T) {
	// 注册自定义验证：检查字符串长度是否为偶数
	err := rule.RegisterValidation("even_length", func(fl validator.FieldLevel) bool {
		str, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		return len(str)%2 == 0
	})
	if err != nil {
		t.Fatalf("Failed to register validation: %v", err)
	}

	// 测试有效字符串
	err = rule.ValidateVar("test", "even_length")
	if err != nil {
		t.Errorf("Expected no error for even length string, got %v", err)
	}

	// 测试无效字符串
	err = rule.ValidateVar("test1", "even_length")
	if err == nil {
		t.Error("Expected error for odd length string, got nil")
	}
}
